package tui

import (
	"time"

	"shortgen/internal/api"
)

// snapshotMsg carries a freshly fetched project snapshot.
type snapshotMsg struct {
	Project *api.Project
}

// pollErrMsg carries a failed poll; the loop keeps going.
type pollErrMsg struct {
	Err error
}

// tickMsg fires when the next poll is due.
type tickMsg struct {
	Time time.Time
}
