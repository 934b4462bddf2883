package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-history-monitor/internal/util"
)

type TableFormatter struct {
	out     io.Writer
	headers []string
}

func NewTableFormatter(out io.Writer) *TableFormatter {
	return &TableFormatter{
		out:     out,
		headers: []string{"Command", "Count", "Last Used", "Active Days", "Top Flags"},
	}
}

func (f *TableFormatter) Format(data []CommandSummary) error {
	rows := make([][]string, 0, len(data))
	for _, row := range data {
		flags := topFlags(row.Flags)
		if len(flags) > 3 {
			flags = flags[:3]
		}
		rows = append(rows, []string{
			row.Name,
			fmt.Sprintf("%d", row.Count),
			row.MostRecentUse.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", row.ActiveDays),
			strings.Join(flags, ", "),
		})
	}

	widths := f.columnWidths(rows)

	f.printBorder(widths, "┌", "┬", "┐")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "├", "┼", "┤")
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "└", "┴", "┘")

	return nil
}

func (f *TableFormatter) columnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := util.DisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, left, middle, right string) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	fmt.Fprintln(f.out, left+strings.Join(parts, middle)+right)
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = " " + util.PadString(cell, widths[i], true) + " "
	}
	fmt.Fprintln(f.out, "│"+strings.Join(parts, "│")+"│")
}
