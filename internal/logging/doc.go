// Package logging builds the structured slog loggers used across shortgen.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attribute helpers so every component tags log lines with the same
// keys for project identifiers and statuses. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
