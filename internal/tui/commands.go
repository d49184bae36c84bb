package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func fetchSnapshot(fetcher Fetcher, projectID string) tea.Cmd {
	return func() tea.Msg {
		project, err := fetcher.Get(context.Background(), projectID)
		if err != nil {
			return pollErrMsg{Err: err}
		}
		return snapshotMsg{Project: project}
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{Time: t}
	})
}
