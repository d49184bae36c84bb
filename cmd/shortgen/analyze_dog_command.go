package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newAnalyzeDogCommand previews the dog analysis a photo would produce,
// without creating a project. The uploaded path can seed a later
// `create --dog-image` run.
func newAnalyzeDogCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze-dog <image>",
		Short: "Analyze a dog photo without creating a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			result, err := client.UploadDogImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "breed:      %s\n", result.Analysis.Breed)
			fmt.Fprintf(out, "confidence: %.0f%%\n", result.Analysis.Confidence*100)
			if len(result.Analysis.Characteristics) > 0 {
				fmt.Fprintf(out, "traits:     %s\n", strings.Join(result.Analysis.Characteristics, ", "))
			}
			fmt.Fprintf(out, "uploaded:   %s\n", result.ImagePath)
			fmt.Fprintf(out, "Run 'shortgen create --dog-image %s <description>' to use this photo\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the analysis as JSON")
	return cmd
}
