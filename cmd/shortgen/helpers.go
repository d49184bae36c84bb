package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

// writeJSON prints v to the command's stdout as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// truncate shortens value to max runes. Descriptions are frequently
// non-ASCII, so the cut is made on rune boundaries, never mid-character.
func truncate(value string, max int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if max <= 3 || len(runes) <= max {
		return value
	}
	return string(runes[:max-3]) + "..."
}

// detectVariant infers the workflow variant from the fields the backend
// populates. An explicit --variant flag always wins over this guess.
func detectVariant(project *api.Project) workflow.Variant {
	if project == nil {
		return workflow.VariantClassic
	}
	if project.CurrentStep > 0 || len(project.StepPrompts) > 0 ||
		len(project.GeneratedImages) > 0 || project.SelectedImageIndex != nil {
		return workflow.VariantFourStep
	}
	if project.FinalVideoPath != "" || (project.VideoPrompt != "" && len(project.Prompts) == 0) {
		return workflow.VariantDirectVideo
	}
	if status, ok := workflow.ParseStatus(project.Status); ok {
		if workflow.Rank(workflow.VariantClassic, status) < 0 &&
			workflow.Rank(workflow.VariantFourStep, status) >= 0 {
			return workflow.VariantFourStep
		}
	}
	return workflow.VariantClassic
}

func resolveVariant(flagValue string, project *api.Project) (workflow.Variant, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return detectVariant(project), nil
	}
	variant, ok := workflow.ParseVariant(flagValue)
	if !ok {
		return "", fmt.Errorf("unknown variant %q (use classic, four-step, or direct-video)", flagValue)
	}
	return variant, nil
}

// formatCreated renders a backend timestamp compactly, falling back to the
// raw string when it does not parse.
func formatCreated(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Local().Format("2006-01-02 15:04")
		}
	}
	return value
}

func phaseSummary(variant workflow.Variant, rawStatus string) (workflow.Phase, string) {
	status, _ := workflow.ParseStatus(rawStatus)
	phase := workflow.PhaseFor(variant, status)
	return phase, fmt.Sprintf("%s (%d%%)", phase.Label, phase.Percent)
}
