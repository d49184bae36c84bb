package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shortgen/internal/workflow"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Trigger generation stages",
	}

	generateCmd.AddCommand(newGenerateStageCommand(ctx, "all",
		"Run the whole pipeline server-side",
		func(c stageClient) stageFunc { return c.GenerateAll }))
	generateCmd.AddCommand(newGenerateStageCommand(ctx, "images",
		"Generate images from the project's prompts",
		func(c stageClient) stageFunc { return c.GenerateImages }))
	generateCmd.AddCommand(newGenerateStageCommand(ctx, "video-prompts",
		"Analyze generated images and derive video prompts",
		func(c stageClient) stageFunc { return c.AnalyzeAndGenerateVideoPrompts }))
	generateCmd.AddCommand(newGenerateStageCommand(ctx, "videos",
		"Generate videos from the project's video prompts",
		func(c stageClient) stageFunc { return c.GenerateVideos }))

	return generateCmd
}

type stageFunc func(ctx context.Context, projectID string) error

type stageClient interface {
	GenerateAll(ctx context.Context, projectID string) error
	GenerateImages(ctx context.Context, projectID string) error
	AnalyzeAndGenerateVideoPrompts(ctx context.Context, projectID string) error
	GenerateVideos(ctx context.Context, projectID string) error
}

func newGenerateStageCommand(ctx *commandContext, name, short string, pick func(stageClient) stageFunc) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   name + " <project-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := pick(client)(cmd.Context(), projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Triggered %s for project %s\n", name, projectID)
			if !follow {
				return nil
			}
			return followProject(cmd, ctx, client, projectID, workflow.VariantClassic, 0)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll until the stage finishes")
	return cmd
}

// newAdvanceCommand triggers whatever stage the project's current status
// enables, using the declarative stage graph for the detected variant.
func newAdvanceCommand(ctx *commandContext) *cobra.Command {
	var variantFlag string
	var follow bool

	cmd := &cobra.Command{
		Use:   "advance <project-id>",
		Short: "Trigger the next stage for a project",
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
			variant, err := resolveVariant(variantFlag, project)
			if err != nil {
				return err
			}

			controller := workflow.NewController(variant, workflow.Triggers{
				GenerateImages:       client.GenerateImages,
				GenerateVideoPrompts: client.AnalyzeAndGenerateVideoPrompts,
				GenerateVideos:       client.GenerateVideos,
				ExecuteStep: func(stepCtx context.Context, id string, step int) error {
					_, stepErr := client.ExecuteWorkflowStep(stepCtx, id, step)
					return stepErr
				},
				ExecuteDirectVideo: client.ExecuteDirectVideo,
			})

			status, _ := workflow.ParseStatus(project.Status)
			stage, ok := controller.NextAction(status)
			if !ok {
				return fmt.Errorf("project %s has no pending action in status %q", projectID, project.Status)
			}
			if err := controller.Advance(cmd.Context(), projectID, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Triggered %s for project %s\n", stage.Name, projectID)
			if !follow {
				return nil
			}
			return followProject(cmd, ctx, client, projectID, variant, 0)
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "Workflow variant (classic, four-step, direct-video)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll until the stage finishes")
	return cmd
}
