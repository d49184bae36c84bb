// Package poller watches a project until the backend reports a terminal
// status. Polling is the only progress channel the backend offers, so the
// loop here is the heart of every follow-style command.
package poller
