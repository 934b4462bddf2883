package formatter

import (
	"sort"
	"time"

	"github.com/penwyp/go-history-monitor/internal/core/model"
)

// CommandSummary is the per-command row emitted by the machine-readable
// output formats.
type CommandSummary struct {
	Name          string         `json:"name"`
	Count         int            `json:"count"`
	MostRecentUse time.Time      `json:"mostRecentUse"`
	ActiveDays    int            `json:"activeDays"`
	Flags         map[string]int `json:"flags,omitempty"`
}

// Summarize converts records into summary rows, preserving input order.
func Summarize(records []*model.CommandRecord) []CommandSummary {
	summaries := make([]CommandSummary, 0, len(records))
	for _, record := range records {
		summary := CommandSummary{
			Name:          record.Name,
			Count:         record.Count,
			MostRecentUse: record.MostRecentUse,
			ActiveDays:    len(record.CalendarUsage),
		}
		if len(record.Flags) > 0 {
			summary.Flags = record.Flags
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// topFlags returns the flag tokens sorted by count descending, token
// ascending on ties.
func topFlags(flags map[string]int) []string {
	tokens := make([]string, 0, len(flags))
	for token := range flags {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if flags[tokens[i]] != flags[tokens[j]] {
			return flags[tokens[i]] > flags[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}
