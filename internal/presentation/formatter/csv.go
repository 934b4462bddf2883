package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

type CSVFormatter struct {
	out io.Writer
}

func NewCSVFormatter(out io.Writer) *CSVFormatter {
	return &CSVFormatter{out: out}
}

func (f *CSVFormatter) Format(data []CommandSummary) error {
	w := csv.NewWriter(f.out)

	headers := []string{"Command", "Count", "Last Used", "Active Days", "Flags"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range data {
		flagParts := make([]string, 0, len(row.Flags))
		for _, token := range topFlags(row.Flags) {
			flagParts = append(flagParts, fmt.Sprintf("%s=%d", token, row.Flags[token]))
		}

		record := []string{
			row.Name,
			fmt.Sprintf("%d", row.Count),
			row.MostRecentUse.Format(time.RFC3339),
			fmt.Sprintf("%d", row.ActiveDays),
			strings.Join(flagParts, ";"),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
