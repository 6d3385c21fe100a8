// Package tui contains the terminal UI layer built on Bubble Tea. The tree
// state itself lives in the explorer package; everything here only renders it
// and translates key presses into store operations.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize prepares the terminal environment before starting the viewer.
// It honors the env variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) so colors survive in non-interactive and CI environments, and
// has no effect elsewhere. Call it once at the start of main.
func Initialize() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
