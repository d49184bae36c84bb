package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shortgen/internal/workflow"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case snapshotMsg:
		return m.handleSnapshot(msg)
	case pollErrMsg:
		return m.handlePollError(msg)
	case tickMsg:
		return m, fetchSnapshot(m.fetcher, m.projectID)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	m.polls++
	m.err = nil

	if msg.Project == nil {
		return m, tickCmd(m.interval)
	}

	status, known := workflow.ParseStatus(msg.Project.Status)
	rank := workflow.Rank(m.variant, status)
	if known && rank >= 0 && rank < m.bestRank {
		// Stale read from the backend; keep the newer snapshot on screen.
		return m, tickCmd(m.interval)
	}
	if rank > m.bestRank {
		m.bestRank = rank
	}
	m.project = msg.Project
	m.phase = workflow.PhaseFor(m.variant, status)

	if known && workflow.IsTerminal(status) {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

func (m Model) handlePollError(msg pollErrMsg) (tea.Model, tea.Cmd) {
	m.polls++
	m.err = msg.Err
	return m, tickCmd(m.errorInterval)
}
