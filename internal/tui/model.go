package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shortgen/internal/api"
	"shortgen/internal/workflow"
)

// Fetcher retrieves the current project snapshot.
type Fetcher interface {
	Get(ctx context.Context, projectID string) (*api.Project, error)
}

// Model represents the watch screen state.
type Model struct {
	fetcher       Fetcher
	projectID     string
	variant       workflow.Variant
	interval      time.Duration
	errorInterval time.Duration

	project  *api.Project
	phase    workflow.Phase
	bestRank int
	polls    int
	started  time.Time
	err      error
	done     bool
}

// NewModel creates a watch model for one project.
func NewModel(fetcher Fetcher, projectID string, variant workflow.Variant, interval, errorInterval time.Duration) Model {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if errorInterval <= 0 {
		errorInterval = 5 * time.Second
	}
	return Model{
		fetcher:       fetcher,
		projectID:     projectID,
		variant:       variant,
		interval:      interval,
		errorInterval: errorInterval,
		bestRank:      -1,
		started:       time.Now(),
	}
}

// Done reports whether the watched project reached a terminal status.
func (m Model) Done() bool { return m.done }

// Project returns the last accepted snapshot, which may be nil.
func (m Model) Project() *api.Project { return m.project }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return fetchSnapshot(m.fetcher, m.projectID)
}
