package util

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions for when stdout is not a terminal.
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// TerminalSize returns the current terminal dimensions as (columns, rows).
// Degraded detection is recovered locally via the fixed fallback.
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultTerminalWidth, DefaultTerminalHeight
	}
	return width, height
}
