package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shortgen/internal/tui"
	"shortgen/internal/workflow"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var variantFlag string
	var maxWait time.Duration
	var useTUI bool

	cmd := &cobra.Command{
		Use:   "watch <project-id>",
		Short: "Poll a project until it finishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			project, err := client.Get(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			cacheSnapshot(ctx, project)
			variant, err := resolveVariant(variantFlag, project)
			if err != nil {
				return err
			}

			if useTUI {
				return watchTUI(cmd, ctx, client, projectID, variant)
			}

			phase, _ := phaseSummary(variant, project.Status)
			if phase.Terminal {
				fmt.Fprintf(cmd.OutOrStdout(), "Project %s already finished (%s)\n", projectID, project.Status)
				printResultLinks(cmd, client, project)
				return nil
			}
			return followProject(cmd, ctx, client, projectID, variant, maxWait)
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "Workflow variant (classic, four-step, direct-video)")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 0, "Give up after this long (0 uses the configured limit)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Show a full-screen progress view")
	return cmd
}

func watchTUI(cmd *cobra.Command, ctx *commandContext, fetcher tui.Fetcher, projectID string, variant workflow.Variant) error {
	var interval, errorInterval time.Duration
	if cfg, err := ctx.ensureConfig(); err == nil && cfg != nil {
		interval = time.Duration(cfg.Poll.Interval) * time.Second
		errorInterval = time.Duration(cfg.Poll.ErrorRetryInterval) * time.Second
	}

	model := tui.NewModel(fetcher, projectID, variant, interval, errorInterval)
	program := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithInput(cmd.InOrStdin()),
	)
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("watch view: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok {
		return nil
	}
	if project := final.Project(); project != nil {
		cacheSnapshot(ctx, project)
		if final.Done() {
			notifyOutcome(ctx, project, "")
		}
	}
	return nil
}
