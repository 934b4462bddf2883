package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize(width, height int) func() (int, int) {
	return func() (int, int) { return width, height }
}

func TestBarFieldWidth(t *testing.T) {
	tests := []struct {
		name      string
		termWidth int
		want      int
	}{
		{name: "default terminal", termWidth: 80, want: 53},
		{name: "wide terminal", termWidth: 120, want: 81},
		{name: "tiny terminal clamps to zero", termWidth: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, barFieldWidth(tt.termWidth))
		})
	}
}

func TestWeeklyChart(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithTerminalSize(fixedSize(80, 24)))

	err := r.WeeklyChart(map[int]int{0: 2, 1: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	// Peak bucket fills the whole 53-cell field.
	assert.Equal(t, 53, strings.Count(lines[1], "■"))
	assert.True(t, strings.HasPrefix(lines[1], "M: "))
	assert.True(t, strings.HasSuffix(lines[1], " 4"))

	// Half the peak gets floor(0.5*53) = 26 cells.
	assert.Equal(t, 26, strings.Count(lines[0], "■"))
	assert.True(t, strings.HasSuffix(lines[0], " 2"))

	// Empty buckets still print a padded row.
	assert.Equal(t, 0, strings.Count(lines[6], "■"))
	assert.True(t, strings.HasSuffix(lines[6], " 0"))
}

func TestWeeklyChartNoData(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithTerminalSize(fixedSize(80, 24)))

	assert.ErrorIs(t, r.WeeklyChart(map[int]int{}), ErrNoData)
	assert.ErrorIs(t, r.WeeklyChart(nil), ErrNoData)
	assert.Empty(t, buf.String())
}

func TestHourlyChart(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithTerminalSize(fixedSize(80, 24)))

	err := r.HourlyChart(map[int]int{0: 1, 13: 3})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 24)

	assert.True(t, strings.HasPrefix(lines[0], "12AM : "))
	assert.True(t, strings.HasPrefix(lines[13], "1PM  : "))
	assert.Equal(t, 53, strings.Count(lines[13], "■"))
	assert.Equal(t, 17, strings.Count(lines[0], "■")) // floor(1/3*53)
}

func TestHourlyChartNoData(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithTerminalSize(fixedSize(80, 24)))

	assert.ErrorIs(t, r.HourlyChart(nil), ErrNoData)
}
