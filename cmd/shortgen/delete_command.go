package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project and its generated media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			if !skipConfirm {
				confirmed, err := confirmDeletion(cmd, projectID)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := client.Delete(cmd.Context(), projectID); err != nil {
				return err
			}
			dropCached(ctx, projectID)

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", projectID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func confirmDeletion(cmd *cobra.Command, projectID string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Delete project %s and all generated media? [y/N] ", projectID)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func dropCached(ctx *commandContext, projectID string) {
	store, err := ctx.openCache()
	if err != nil || store == nil {
		return
	}
	defer store.Close()
	_ = store.Delete(context.Background(), projectID)
}
