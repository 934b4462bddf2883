package aggregator

import (
	"sort"
	"time"

	"github.com/penwyp/go-history-monitor/internal/core/model"
)

// BucketTotals holds calendar, weekday and hour-of-day usage summed
// across a set of command records. Summation is commutative and
// associative, so the order records are added in does not matter.
type BucketTotals struct {
	Calendar map[string]int
	Weekly   map[int]int
	Hourly   map[int]int
}

// NewBucketTotals creates empty totals.
func NewBucketTotals() *BucketTotals {
	return &BucketTotals{
		Calendar: make(map[string]int),
		Weekly:   make(map[int]int),
		Hourly:   make(map[int]int),
	}
}

// Add merges one record's buckets into the totals.
func (b *BucketTotals) Add(r *model.CommandRecord) {
	for day, n := range r.CalendarUsage {
		b.Calendar[day] += n
	}
	for day, n := range r.WeeklyUsage {
		b.Weekly[day] += n
	}
	for hour, n := range r.HourlyUsage {
		b.Hourly[hour] += n
	}
}

// Sum aggregates the buckets of every record in the mapping.
func Sum(records map[string]*model.CommandRecord) *BucketTotals {
	totals := NewBucketTotals()
	for _, record := range records {
		totals.Add(record)
	}
	return totals
}

// FilterWindow derives the subset of records with at least one use inside
// [start, end], each restricted to that window via FilterRange. The
// source mapping and its records are left untouched.
func FilterWindow(records map[string]*model.CommandRecord, start, end time.Time) map[string]*model.CommandRecord {
	kept := make(map[string]*model.CommandRecord)
	for name, record := range records {
		windowed := record.FilterRange(start, end)
		if windowed.Count > 0 {
			kept[name] = windowed
		}
	}
	return kept
}

// TopByCount returns the records sorted by use count descending, name
// ascending on ties, truncated to limit. A limit of 0 means no limit.
func TopByCount(records map[string]*model.CommandRecord, limit int) []*model.CommandRecord {
	sorted := make([]*model.CommandRecord, 0, len(records))
	for _, record := range records {
		sorted = append(sorted, record)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
