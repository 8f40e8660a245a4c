package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when the terminal width cannot be detected.
const DefaultTermWidth = 80

// TermWidth returns the terminal width of stdout, or DefaultTermWidth when
// stdout is not a terminal.
func TermWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return DefaultTermWidth
	}
	return w
}
