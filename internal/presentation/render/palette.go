package render

import (
	"math"

	"github.com/penwyp/go-history-monitor/internal/util"
)

// Palette is an ordered sequence of display styles from no activity to
// maximum activity.
type Palette []string

// DefaultPalette mirrors the GitHub contribution-graph green ramp as
// 24-bit foreground colors.
var DefaultPalette = Palette{
	"\033[38;2;38;38;38m",
	"\033[38;2;45;59;45m",
	"\033[38;2;51;81;52m",
	"\033[38;2;55;104;58m",
	"\033[38;2;57;127;69m",
	"\033[38;2;55;152;69m",
	"\033[38;2;55;176;73m",
	"\033[38;2;49;202;76m",
	"\033[38;2;36;228;79m",
	"\033[38;2;0;255;81m",
}

// Colorize wraps glyph in the style matching the given strength and
// resets styling afterward. Strength outside [0, 1] is clamped; the level
// index is floor(strength * (len-1)).
func (p Palette) Colorize(glyph string, strength float64) string {
	if len(p) == 0 {
		return glyph
	}

	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	index := int(math.Floor(strength * float64(len(p)-1)))
	return p[index] + glyph + util.ColorReset
}
