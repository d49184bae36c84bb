package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

func newWorkflowCommand(ctx *commandContext) *cobra.Command {
	workflowCmd := &cobra.Command{
		Use:   "workflow",
		Short: "Four-step scene workflow",
	}

	workflowCmd.AddCommand(newWorkflowCreateCommand(ctx))
	workflowCmd.AddCommand(newWorkflowStepCommand(ctx))
	workflowCmd.AddCommand(newWorkflowCompleteCommand(ctx))

	return workflowCmd
}

func newWorkflowCreateCommand(ctx *commandContext) *cobra.Command {
	var styleOptions string
	var referenceImage string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "create <description>",
		Short: "Create a four-step workflow project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			project, err := client.CreateNewWorkflow(cmd.Context(), api.NewWorkflowRequest{
				Description:        args[0],
				StyleOptions:       styleOptions,
				ReferenceImagePath: referenceImage,
			})
			if err != nil {
				return err
			}
			cacheSnapshot(ctx, project)

			if jsonOut {
				return writeJSON(cmd, project)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created workflow project %s\n", project.ProjectID)
			fmt.Fprintf(out, "Run 'shortgen workflow step %s 1' or 'shortgen workflow complete %s'\n",
				project.ProjectID, project.ProjectID)
			return nil
		},
	}

	cmd.Flags().StringVar(&styleOptions, "style", "", "Style options JSON passed to scene generation")
	cmd.Flags().StringVar(&referenceImage, "reference-image", "", "Path to a reference photo for scene generation")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the created project as JSON")
	return cmd
}

func newWorkflowStepCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "step <project-id> <step>",
		Short: "Run one numbered workflow step (1-4)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			step, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("step must be a number: %w", err)
			}

			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			project, err := client.ExecuteWorkflowStep(cmd.Context(), projectID, step)
			if err != nil {
				return err
			}
			cacheSnapshot(ctx, project)

			if jsonOut {
				return writeJSON(cmd, project)
			}
			_, summary := phaseSummary(workflow.VariantFourStep, project.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "Step %d done; project %s is now %s (%s)\n",
				step, projectID, project.Status, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the updated project as JSON")
	return cmd
}

func newWorkflowCompleteCommand(ctx *commandContext) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "complete <project-id>",
		Short: "Run all four workflow steps server-side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := client.ExecuteCompleteWorkflow(cmd.Context(), projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started complete workflow for project %s\n", projectID)
			if !follow {
				return nil
			}
			return followProject(cmd, ctx, client, projectID, workflow.VariantFourStep, 0)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll until the workflow finishes")
	return cmd
}
