package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"shortgen/internal/workflow"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderPhaseLine prints one progress update in follow mode.
func renderPhaseLine(status string, phase workflow.Phase, colorize bool) string {
	line := fmt.Sprintf("  %-28s %3d%%  [%s]", phase.Label, phase.Percent, status)
	if !colorize {
		return line
	}
	switch {
	case phase.Label == "failed":
		return ansiRed + line + ansiReset
	case phase.Terminal:
		return ansiGreen + line + ansiReset
	default:
		return ansiYellow + line + ansiReset
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
