package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shortgen/internal/api"
)

var promptTypeTitler = cases.Title(language.English)

func newPromptTypesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "prompt-types [type]",
		Short: "List content categories or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				detail, err := client.PromptTypeDetail(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, detail)
				}
				renderPromptTypeDetail(cmd, detail)
				return nil
			}

			types, err := client.PromptTypes(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, types)
			}
			renderPromptTypeTable(cmd, types)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit prompt types as JSON")
	return cmd
}

func renderPromptTypeTable(cmd *cobra.Command, types []api.PromptType) {
	out := cmd.OutOrStdout()
	if len(types) == 0 {
		fmt.Fprintln(out, "No prompt types available")
		return
	}

	rows := make([][]string, 0, len(types))
	for _, pt := range types {
		rows = append(rows, []string{
			pt.Type,
			promptTypeDisplayName(pt),
			truncate(pt.Description, 60),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"TYPE", "NAME", "DESCRIPTION"},
		rows,
	))
	fmt.Fprintln(out, "Run 'shortgen prompt-types <type>' for examples and tips")
}

func renderPromptTypeDetail(cmd *cobra.Command, pt *api.PromptType) {
	out := cmd.OutOrStdout()

	name := promptTypeDisplayName(*pt)
	if pt.Icon != "" {
		fmt.Fprintf(out, "%s %s (%s)\n", pt.Icon, name, pt.Type)
	} else {
		fmt.Fprintf(out, "%s (%s)\n", name, pt.Type)
	}
	if pt.Description != "" {
		fmt.Fprintln(out, pt.Description)
	}

	printDetailList(cmd, "Features", pt.Features)
	printDetailList(cmd, "Best for", pt.BestFor)
	printDetailList(cmd, "Suggested descriptions", pt.SuggestedDescriptions)
	printDetailList(cmd, "Tips", pt.Tips)

	if len(pt.Examples) > 0 {
		fmt.Fprintf(out, "\nExamples (%d):\n", len(pt.Examples))
		for _, example := range pt.Examples {
			fmt.Fprintf(out, "  %s\n", example.Title)
			if example.Description != "" {
				fmt.Fprintf(out, "    %s\n", example.Description)
			}
			if example.Prompt != "" {
				fmt.Fprintf(out, "    prompt: %s\n", example.Prompt)
			}
		}
	}
}

func printDetailList(cmd *cobra.Command, label string, values []string) {
	if len(values) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", label)
	for _, value := range values {
		fmt.Fprintf(out, "  - %s\n", value)
	}
}

// promptTypeDisplayName falls back to a title-cased form of the type slug
// when the backend returns no display name.
func promptTypeDisplayName(pt api.PromptType) string {
	if pt.Name != "" {
		return pt.Name
	}
	slug := strings.NewReplacer("_", " ", "-", " ").Replace(pt.Type)
	return promptTypeTitler.String(slug)
}
