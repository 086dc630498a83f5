// Package aggregate is a small library of grouping and rollup functions over
// candidate sets. Each aggregator is parameterized by extractor functions so
// every dashboard metric instantiates the same generic shapes instead of
// hand-rolling its own loop.
package aggregate

import (
	"time"

	"github.com/Brommah/hvc/internal/domain"
)

// DayFormat is the canonical bucket date format.
const DayFormat = "2006-01-02"

// TimeKey extracts the tracked timestamp a candidate is bucketed by.
// ok is false when the candidate has no such timestamp.
type TimeKey func(domain.Candidate) (time.Time, bool)

// NumberKey extracts an optional numeric field from a candidate.
type NumberKey func(domain.Candidate) *float64

// LabelKey extracts an optional categorical field from a candidate.
type LabelKey func(domain.Candidate) *string

// DayBucket is one calendar day of a time series.
type DayBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AvgBucket is one calendar day of an average-typed time series. Average is
// null when no candidate contributed data that day, distinct from an average
// that is actually zero.
type AvgBucket struct {
	Date    string   `json:"date"`
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
}

// CountByDay counts candidates per UTC calendar day over a trailing window
// of days ending today (inclusive). The result always has exactly days
// buckets in chronological order; days with no matching candidates stay at
// zero.
func CountByDay(cands []domain.Candidate, key TimeKey, days int, now time.Time) []DayBucket {
	buckets, index := emptyWindow(days, now)
	for _, c := range cands {
		t, ok := key(c)
		if !ok {
			continue
		}
		if i, inWindow := index[dayOf(t)]; inWindow {
			buckets[i].Count++
		}
	}
	return buckets
}

// AverageByDay averages a numeric field per calendar day over a trailing
// window. Candidates with a null value do not contribute. Averages are
// rounded to one decimal place.
func AverageByDay(cands []domain.Candidate, key TimeKey, value NumberKey, days int, now time.Time) []AvgBucket {
	counts, index := emptyWindow(days, now)
	sums := make([]float64, len(counts))

	for _, c := range cands {
		t, ok := key(c)
		if !ok {
			continue
		}
		v := value(c)
		if v == nil {
			continue
		}
		if i, inWindow := index[dayOf(t)]; inWindow {
			counts[i].Count++
			sums[i] += *v
		}
	}

	out := make([]AvgBucket, len(counts))
	for i, b := range counts {
		out[i] = AvgBucket{Date: b.Date, Count: b.Count}
		if b.Count > 0 {
			avg := Round1(sums[i] / float64(b.Count))
			out[i].Average = &avg
		}
	}
	return out
}

// emptyWindow builds the gap-filled bucket list for the trailing window and
// an index from date string to bucket position.
func emptyWindow(days int, now time.Time) ([]DayBucket, map[string]int) {
	buckets := make([]DayBucket, 0, days)
	index := make(map[string]int, days)

	start := midnight(now.In(time.UTC)).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(DayFormat)
		index[date] = len(buckets)
		buckets = append(buckets, DayBucket{Date: date})
	}
	return buckets, index
}

// Bucketing is pinned to UTC. Date-only source values parse as UTC midnight,
// so keying in any other location would move them into the neighboring day
// and make the series depend on the host timezone.

// dayOf maps a timestamp onto its UTC calendar day.
func dayOf(t time.Time) string {
	return t.In(time.UTC).Format(DayFormat)
}

// midnight truncates a timestamp to midnight in its own location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
