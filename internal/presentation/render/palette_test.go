package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-history-monitor/internal/util"
)

func TestColorizeLevelSelection(t *testing.T) {
	tests := []struct {
		name      string
		strength  float64
		wantLevel int
	}{
		{name: "zero maps to first level", strength: 0, wantLevel: 0},
		{name: "one maps to last level", strength: 1, wantLevel: 9},
		{name: "0.95 maps to index 8", strength: 0.95, wantLevel: 8},
		{name: "midpoint", strength: 0.5, wantLevel: 4},
		{name: "negative clamps to first", strength: -3, wantLevel: 0},
		{name: "above one clamps to last", strength: 2.5, wantLevel: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultPalette.Colorize("■", tt.strength)
			assert.Equal(t, DefaultPalette[tt.wantLevel]+"■"+util.ColorReset, got)
		})
	}
}

func TestColorizeCustomPalette(t *testing.T) {
	palette := Palette{"A", "B", "C"}
	assert.Equal(t, "A■"+util.ColorReset, palette.Colorize("■", 0))
	assert.Equal(t, "C■"+util.ColorReset, palette.Colorize("■", 1))
}

func TestColorizeEmptyPalette(t *testing.T) {
	var palette Palette
	assert.Equal(t, "■", palette.Colorize("■", 0.5))
}

func TestDefaultPaletteSize(t *testing.T) {
	assert.Len(t, DefaultPalette, 10)
}
