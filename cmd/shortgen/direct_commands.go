package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

func newDirectCommand(ctx *commandContext) *cobra.Command {
	directCmd := &cobra.Command{
		Use:   "direct",
		Short: "Direct image-to-video projects",
	}

	directCmd.AddCommand(newDirectCreateCommand(ctx))
	directCmd.AddCommand(newDirectRunCommand(ctx))

	return directCmd
}

func newDirectCreateCommand(ctx *commandContext) *cobra.Command {
	var images []string
	var prompts []string
	var run bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a direct-video project from images and prompts",
		Long: "Create a direct-video project. Pass --image and --prompt in pairs;\n" +
			"prompt N animates image N. The pairing is validated before any upload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := api.DirectVideoRequest{ImagePaths: images, Prompts: prompts}
			if err := request.Validate(); err != nil {
				return err
			}

			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			project, err := client.CreateDirectVideo(cmd.Context(), request)
			if err != nil {
				return err
			}
			cacheSnapshot(ctx, project)

			if jsonOut && !run {
				return writeJSON(cmd, project)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created direct-video project %s with %d image(s)\n",
				project.ProjectID, len(images))
			if !run {
				fmt.Fprintf(out, "Run 'shortgen direct run %s' to start video generation\n", project.ProjectID)
				return nil
			}
			if err := client.ExecuteDirectVideo(cmd.Context(), project.ProjectID); err != nil {
				return err
			}
			return followProject(cmd, ctx, client, project.ProjectID, workflow.VariantDirectVideo, 0)
		},
	}

	cmd.Flags().StringArrayVar(&images, "image", nil, "Path to an input image (repeatable)")
	cmd.Flags().StringArrayVar(&prompts, "prompt", nil, "Animation prompt for the matching image (repeatable)")
	cmd.Flags().BoolVar(&run, "run", false, "Start video generation immediately and follow it")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the created project as JSON")
	return cmd
}

func newDirectRunCommand(ctx *commandContext) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "run <project-id>",
		Short: "Start video generation for a direct-video project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := client.ExecuteDirectVideo(cmd.Context(), projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started video generation for project %s\n", projectID)
			if !follow {
				return nil
			}
			return followProject(cmd, ctx, client, projectID, workflow.VariantDirectVideo, 0)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll until generation finishes")
	return cmd
}
