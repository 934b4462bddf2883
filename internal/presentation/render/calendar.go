package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-history-monitor/internal/core/model"
)

const cellGlyph = "■"

var monthLabels = [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}

// daysInYear uses the divisible-by-4 rule the grid layout has always
// used; the Gregorian century exception is deliberately not applied.
func daysInYear(year int) int {
	if year%4 == 0 {
		return 366
	}
	return 365
}

// weekColumns is the number of week columns needed for a year whose
// Jan 1 falls on weekday offset (0=Sunday).
func weekColumns(days, offset int) int {
	return (days + offset + 6) / 7
}

// cellDate maps a grid cell to its date. Cells before Jan 1 or after
// Dec 31 belong to no date and render blank.
func cellDate(yearStart time.Time, weekday, week, offset int) time.Time {
	return yearStart.AddDate(0, 0, weekday+7*week-offset)
}

// Calendar prints one heatmap block per year covered by [start, end].
// Cell intensity is scaled against the busiest day of the entire mapping,
// not per year. Returns ErrNoData when the mapping holds no counts.
func (r *Renderer) Calendar(calendar map[string]int, start, end time.Time) error {
	peak := 0
	for _, n := range calendar {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return ErrNoData
	}

	loc := start.Location()
	for year := start.Year(); year <= end.Year(); year++ {
		fmt.Fprintf(r.out, "%d:\n", year)

		days := daysInYear(year)
		yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
		yearEnd := time.Date(year, 12, 31, 0, 0, 0, 0, loc)
		offset := int(yearStart.Weekday())
		columns := weekColumns(days, offset)

		// Month labels go at the column whose following week enters a
		// new month, giving a sparse strip aligned with month starts.
		var header strings.Builder
		header.WriteString("  ")
		monthIndex := 0
		for week := 0; week < columns; week++ {
			next := yearStart.AddDate(0, 0, 7+7*week-offset)
			if monthIndex < len(monthLabels) && int(next.Month()) > monthIndex {
				header.WriteString(monthLabels[monthIndex])
				monthIndex++
			} else {
				header.WriteByte(' ')
			}
		}
		fmt.Fprintln(r.out, header.String())

		for weekday := 0; weekday < 7; weekday++ {
			var row strings.Builder
			row.WriteString(weekdayLabels[weekday])
			row.WriteByte(' ')
			for week := 0; week < columns; week++ {
				day := cellDate(yearStart, weekday, week, offset)
				if day.Before(yearStart) || day.After(yearEnd) {
					row.WriteByte(' ')
					continue
				}
				strength := float64(calendar[model.DateKey(day)]) / float64(peak)
				row.WriteString(r.palette.Colorize(cellGlyph, strength))
			}
			fmt.Fprintln(r.out, row.String())
		}

		// Diagnostic footer: distinct recorded days across the mapping.
		fmt.Fprintln(r.out, len(calendar))
	}

	return nil
}
