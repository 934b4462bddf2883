package model

import (
	"sort"
	"time"
)

// DateKeyLayout is the key format for calendar usage buckets.
const DateKeyLayout = "2006-01-02"

// DateKey returns the calendar bucket key for a point in time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Use is a single recorded invocation of a command.
type Use struct {
	Time time.Time
	Args []string
}

// CommandRecord aggregates every recorded invocation of one command,
// together with the time-bucket histograms derived from them.
//
// Invariant: Count == len(Uses) and equals the sum of the values in each
// of CalendarUsage, WeeklyUsage and HourlyUsage.
type CommandRecord struct {
	Name          string
	Count         int
	Uses          []Use
	MostRecentUse time.Time
	CalendarUsage map[string]int // keyed by DateKey
	WeeklyUsage   map[int]int    // 0=Sunday .. 6=Saturday
	HourlyUsage   map[int]int    // 0 .. 23
	Flags         map[string]int
}

// NewCommandRecord creates an empty record for the named command.
func NewCommandRecord(name string) *CommandRecord {
	return &CommandRecord{
		Name:          name,
		CalendarUsage: make(map[string]int),
		WeeklyUsage:   make(map[int]int),
		HourlyUsage:   make(map[int]int),
		Flags:         make(map[string]int),
	}
}

// AddUse records one invocation and updates every derived bucket. Two
// identical calls record two distinct uses; this is a counter, not a set.
func (r *CommandRecord) AddUse(t time.Time, args []string) {
	r.Count++
	r.Uses = append(r.Uses, Use{Time: t, Args: args})
	r.CalendarUsage[DateKey(t)]++
	r.WeeklyUsage[int(t.Weekday())]++
	r.HourlyUsage[t.Hour()]++
	for _, arg := range args {
		if len(arg) > 1 && arg[0] == '-' {
			r.Flags[arg]++
		}
	}
	if r.MostRecentUse.IsZero() || t.After(r.MostRecentUse) {
		r.MostRecentUse = t
	}
}

// FilterRange returns a new record rebuilt from the uses that fall inside
// [start, end]. A zero end means now. The source record is not modified.
//
// MostRecentUse is carried over from the source record unchanged, so it
// reflects the most recent use ever, not the most recent use in range.
// Recency ranking of windowed records depends on this.
func (r *CommandRecord) FilterRange(start, end time.Time) *CommandRecord {
	if end.IsZero() {
		end = time.Now()
	}

	out := NewCommandRecord(r.Name)
	for _, u := range r.Uses {
		if !u.Time.Before(start) && !u.Time.After(end) {
			out.AddUse(u.Time, u.Args)
		}
	}
	out.MostRecentUse = r.MostRecentUse
	return out
}

// LastN returns a new record rebuilt from the n most recent uses, or all
// of them when n exceeds the count. Sorting happens on a copy so the
// source record's insertion order is preserved; ties keep their prior
// relative order.
func (r *CommandRecord) LastN(n int) *CommandRecord {
	uses := make([]Use, len(r.Uses))
	copy(uses, r.Uses)
	sort.SliceStable(uses, func(i, j int) bool {
		return uses[i].Time.Before(uses[j].Time)
	})

	if n < 0 {
		n = 0
	}
	if n < len(uses) {
		uses = uses[len(uses)-n:]
	}

	out := NewCommandRecord(r.Name)
	for _, u := range uses {
		out.AddUse(u.Time, u.Args)
	}
	out.MostRecentUse = r.MostRecentUse
	return out
}
