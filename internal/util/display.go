package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColorReset restores the default terminal styling.
const ColorReset = "\033[0m"

// DisplayWidth calculates the actual display width of a string, accounting for wide runes
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a specific display width, handling wide runes correctly
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := DisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}
