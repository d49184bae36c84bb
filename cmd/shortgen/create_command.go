package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var promptType string
	var dogImage string
	var follow bool
	var jsonOut bool
	var skipGenerate bool

	cmd := &cobra.Command{
		Use:   "create <description>",
		Short: "Create a project and start prompt generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}

			description := strings.TrimSpace(args[0])
			var project *api.Project
			if strings.TrimSpace(dogImage) != "" {
				project, err = client.CreateWithDogUpload(cmd.Context(), description, promptType, dogImage)
			} else {
				project, err = client.Create(cmd.Context(), api.CreateRequest{
					Description: description,
					ContentType: promptType,
				})
			}
			if err != nil {
				return err
			}
			cacheSnapshot(ctx, project)

			out := cmd.OutOrStdout()
			// Generation is started fire-and-forget; progress is observed by
			// polling, so a failed trigger does not lose the created project.
			if !skipGenerate {
				if genErr := client.GenerateAll(cmd.Context(), project.ProjectID); genErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: generation not started: %v\n", genErr)
				}
			}

			if jsonOut {
				return writeJSON(cmd, project)
			}

			fmt.Fprintf(out, "Created project %s\n", project.ProjectID)
			if project.DogAnalysis != nil {
				fmt.Fprintf(out, "dog analysis: %s (confidence %.0f%%)\n",
					project.DogAnalysis.Breed, project.DogAnalysis.Confidence*100)
			}
			if !follow {
				fmt.Fprintf(out, "Run 'shortgen watch %s' to follow progress\n", project.ProjectID)
				return nil
			}
			return followProject(cmd, ctx, client, project.ProjectID, workflow.VariantClassic, 0)
		},
	}

	cmd.Flags().StringVarP(&promptType, "type", "t", "", "Content category for prompt generation")
	cmd.Flags().StringVar(&dogImage, "dog-image", "", "Path to a dog photo to ground prompt generation")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll until generation finishes")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the created project as JSON")
	cmd.Flags().BoolVar(&skipGenerate, "no-generate", false, "Create the project without starting generation")
	return cmd
}
