package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/penwyp/go-history-monitor/internal/util"
)

const barGlyph = "■"

var weekdayLabels = [7]string{"S", "M", "T", "W", "T", "F", "S"}

var hourLabels = [24]string{
	"12AM", "1AM", "2AM", "3AM", "4AM", "5AM", "6AM", "7AM",
	"8AM", "9AM", "10AM", "11AM", "12PM", "1PM", "2PM", "3PM",
	"4PM", "5PM", "6PM", "7PM", "8PM", "9PM", "10PM", "11PM",
}

// barFieldWidth returns the width of the bar field for the given terminal
// width: 70% of the columns minus room for the trailing count.
func barFieldWidth(termWidth int) int {
	width := int(math.Round(float64(termWidth)*0.7)) - 3
	if width < 0 {
		width = 0
	}
	return width
}

// bar builds a proportional bar of count relative to peak, left-aligned
// within a fixed-width field.
func bar(count, peak, fieldWidth int) string {
	length := int(math.Floor(float64(count) / float64(peak) * float64(fieldWidth)))
	return util.PadString(strings.Repeat(barGlyph, length), fieldWidth, true)
}

// WeeklyChart prints one proportional bar per weekday, Sunday first.
// Returns ErrNoData when the mapping holds no counts.
func (r *Renderer) WeeklyChart(weekly map[int]int) error {
	peak := 0
	for _, n := range weekly {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return ErrNoData
	}

	termWidth, _ := r.size()
	fieldWidth := barFieldWidth(termWidth)
	for day := 0; day < 7; day++ {
		count := weekly[day]
		fmt.Fprintf(r.out, "%s: %s %d\n", weekdayLabels[day], bar(count, peak, fieldWidth), count)
	}
	return nil
}

// HourlyChart prints one proportional bar per hour of day, midnight
// first. Returns ErrNoData when the mapping holds no counts.
func (r *Renderer) HourlyChart(hourly map[int]int) error {
	peak := 0
	for _, n := range hourly {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return ErrNoData
	}

	termWidth, _ := r.size()
	fieldWidth := barFieldWidth(termWidth)
	for hour := 0; hour < 24; hour++ {
		count := hourly[hour]
		fmt.Fprintf(r.out, "%s: %s %d\n", util.PadString(hourLabels[hour], 5, true), bar(count, peak, fieldWidth), count)
	}
	return nil
}
