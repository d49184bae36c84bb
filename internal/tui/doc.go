// Package tui renders a live project watch screen in the terminal.
//
// The model is a thin polling client: it fetches project snapshots on a
// timer, maps the backend status to a display phase, and exits on its own
// once the project reaches a terminal state.
package tui
