package aggregate

import (
	"sort"
	"time"

	"github.com/Brommah/hvc/internal/domain"
)

// WeekBucket is one calendar week of a time series, identified by the date
// of its Monday.
type WeekBucket struct {
	WeekStart string `json:"weekStart"`
	Count     int    `json:"count"`
}

// WeekStart returns the Monday of the UTC week containing t, at midnight. A
// Sunday belongs to the week started by the previous Monday. Weeks are keyed
// in UTC like the daily buckets, so the two series never disagree on which
// day a record belongs to.
func WeekStart(t time.Time) time.Time {
	t = t.In(time.UTC)
	wd := int(t.Weekday()) // Sunday == 0
	diff := 1 - wd
	if wd == 0 {
		diff = -6
	}
	return midnight(t).AddDate(0, 0, diff)
}

// CountByWeek counts candidates per Monday-start week. Only weeks with at
// least one candidate appear, sorted ascending by week start. There is no
// gap-filling: weekly views show history, not a fixed window.
func CountByWeek(cands []domain.Candidate, key TimeKey) []WeekBucket {
	counts := make(map[string]int)
	for _, c := range cands {
		t, ok := key(c)
		if !ok {
			continue
		}
		counts[WeekStart(t).Format(DayFormat)]++
	}

	out := make([]WeekBucket, 0, len(counts))
	for week, count := range counts {
		out = append(out, WeekBucket{WeekStart: week, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart < out[j].WeekStart
	})
	return out
}
