package tui

import (
	"fmt"
	"strings"
	"time"

	"shortgen/internal/api"
)

const progressBarWidth = 30

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shortgen watch"))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("project " + m.projectID))
	b.WriteString("\n\n")

	if m.project == nil && m.err == nil {
		b.WriteString(statusStyle.Render("connecting..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("poll failed: %v (retrying)", m.err)))
		b.WriteString("\n\n")
	}

	if m.project != nil {
		b.WriteString(statusStyle.Render(m.phase.Label))
		b.WriteString("\n")
		b.WriteString(renderProgressBar(m.phase.Percent))
		b.WriteString("\n\n")

		if m.project.Description != "" {
			b.WriteString(infoStyle.Render(m.project.Description))
			b.WriteString("\n")
		}
		b.WriteString(infoStyle.Render(fmt.Sprintf("status: %s | polls: %d | elapsed: %s",
			m.project.Status, m.polls, time.Since(m.started).Round(time.Second))))
		b.WriteString("\n")

		if counts := artifactSummary(m.project); counts != "" {
			b.WriteString(infoStyle.Render(counts))
			b.WriteString("\n")
		}

		if m.done {
			b.WriteString("\n")
			b.WriteString(boxStyle.Render(m.finalSummary()))
			b.WriteString("\n")
		}
	}

	if !m.done {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) finalSummary() string {
	var b strings.Builder
	if m.phase.Label == "failed" {
		b.WriteString(errorStyle.Render("Generation failed"))
	} else {
		b.WriteString(statusStyle.Render("Generation complete"))
	}
	b.WriteString("\n")
	if len(m.project.Videos) > 0 {
		b.WriteString(fmt.Sprintf("%d video(s):\n", len(m.project.Videos)))
		for _, video := range m.project.Videos {
			b.WriteString("  " + video + "\n")
		}
	}
	if m.project.FinalVideoPath != "" {
		b.WriteString("final video: " + m.project.FinalVideoPath + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", progressBarWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

func artifactSummary(project *api.Project) string {
	parts := make([]string, 0, 3)
	if n := len(project.Prompts); n > 0 {
		parts = append(parts, fmt.Sprintf("%d prompts", n))
	}
	if n := len(project.Images) + len(project.GeneratedImages); n > 0 {
		parts = append(parts, fmt.Sprintf("%d images", n))
	}
	if n := len(project.Videos); n > 0 {
		parts = append(parts, fmt.Sprintf("%d videos", n))
	}
	return strings.Join(parts, " | ")
}
