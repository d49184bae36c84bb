package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var variantFlag string

	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			fromCache := false
			project, err := client.Get(cmd.Context(), projectID)
			if err != nil {
				if api.IsNotFound(err) {
					return err
				}
				var statusErr *api.StatusError
				if errors.As(err, &statusErr) {
					return err
				}
				cached, ok, cacheErr := getCached(cmd, ctx, projectID)
				if cacheErr != nil || !ok {
					return err
				}
				project = cached
				fromCache = true
			} else {
				cacheSnapshot(ctx, project)
			}

			if jsonOut {
				return writeJSON(cmd, project)
			}

			variant, err := resolveVariant(variantFlag, project)
			if err != nil {
				return err
			}
			renderProjectDetail(cmd, client, project, variant, fromCache)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the project as JSON")
	cmd.Flags().StringVar(&variantFlag, "variant", "", "Workflow variant (classic, four-step, direct-video)")
	return cmd
}

func getCached(cmd *cobra.Command, ctx *commandContext, projectID string) (*api.Project, bool, error) {
	store, err := ctx.openCache()
	if err != nil || store == nil {
		return nil, false, err
	}
	defer store.Close()
	return store.Get(cmd.Context(), projectID)
}

func renderProjectDetail(cmd *cobra.Command, client *api.Client, project *api.Project, variant workflow.Variant, fromCache bool) {
	out := cmd.OutOrStdout()
	phase, summary := phaseSummary(variant, project.Status)

	if fromCache {
		fmt.Fprintln(out, "backend unreachable; showing cached snapshot")
	}
	fmt.Fprintf(out, "project:     %s\n", project.ProjectID)
	fmt.Fprintf(out, "description: %s\n", project.Description)
	fmt.Fprintf(out, "status:      %s\n", project.Status)
	fmt.Fprintf(out, "phase:       %s\n", summary)
	fmt.Fprintf(out, "variant:     %s\n", variant)
	fmt.Fprintf(out, "created:     %s\n", formatCreated(project.CreatedAt))
	fmt.Fprintf(out, "terminal:    %s\n", yesNo(phase.Terminal))
	if phase.Action != workflow.ActionNone && phase.Action != workflow.ActionViewResults {
		fmt.Fprintf(out, "next action: %s\n", phase.Action)
	}

	if project.DogAnalysis != nil {
		fmt.Fprintf(out, "dog:         %s (confidence %.0f%%)\n",
			project.DogAnalysis.Breed, project.DogAnalysis.Confidence*100)
	}
	if project.PromptType != "" {
		fmt.Fprintf(out, "type:        %s\n", project.PromptType)
	}
	if project.CurrentStep > 0 {
		fmt.Fprintf(out, "step:        %d\n", project.CurrentStep)
	}

	printList(out, "prompts", project.Prompts, func(s string) string { return s })
	printList(out, "step prompts", project.StepPrompts, func(s string) string { return s })
	printList(out, "images", project.Images, client.MediaURL)
	printList(out, "generated images", project.GeneratedImages, client.MediaURL)
	printList(out, "videos", project.Videos, client.MediaURL)
	if project.VideoPrompt != "" {
		fmt.Fprintf(out, "video prompt: %s\n", project.VideoPrompt)
	}
	if project.FinalVideoPath != "" {
		fmt.Fprintf(out, "final video:  %s\n", client.MediaURL(project.FinalVideoPath))
	}
}

func printList(out io.Writer, label string, values []string, transform func(string) string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", label, len(values))
	for _, value := range values {
		fmt.Fprintf(out, "  %s\n", transform(value))
	}
}
