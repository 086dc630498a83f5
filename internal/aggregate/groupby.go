package aggregate

import (
	"sort"

	"github.com/Brommah/hvc/internal/domain"
)

// CategoryStat is one category of a group-by rollup.
type CategoryStat struct {
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Average *float64 `json:"average,omitempty"`
}

// GroupBy counts candidates per category. Candidates with a null key belong
// to no category and are skipped.
func GroupBy(cands []domain.Candidate, key LabelKey) []CategoryStat {
	counts := make(map[string]int)
	for _, c := range cands {
		if label := key(c); label != nil {
			counts[*label]++
		}
	}

	out := make([]CategoryStat, 0, len(counts))
	for label, count := range counts {
		out = append(out, CategoryStat{Label: label, Count: count})
	}
	SortByLabelAsc(out)
	return out
}

// GroupByAverage counts candidates per category and averages a numeric field
// within each. Candidates with a null value still count but do not move the
// average; a category with no values at all reports a null average. round is
// applied to each computed average (RoundWhole for hours, Round1 for scores).
func GroupByAverage(cands []domain.Candidate, key LabelKey, value NumberKey, round func(float64) float64) []CategoryStat {
	type acc struct {
		count  int
		sum    float64
		values int
	}
	groups := make(map[string]*acc)

	for _, c := range cands {
		label := key(c)
		if label == nil {
			continue
		}
		g, ok := groups[*label]
		if !ok {
			g = &acc{}
			groups[*label] = g
		}
		g.count++
		if v := value(c); v != nil {
			g.sum += *v
			g.values++
		}
	}

	out := make([]CategoryStat, 0, len(groups))
	for label, g := range groups {
		stat := CategoryStat{Label: label, Count: g.count}
		if g.values > 0 {
			avg := round(g.sum / float64(g.values))
			stat.Average = &avg
		}
		out = append(out, stat)
	}
	SortByLabelAsc(out)
	return out
}

// SortByLabelAsc orders categories alphabetically, the canonical order for
// role breakdowns.
func SortByLabelAsc(stats []CategoryStat) {
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Label < stats[j].Label
	})
}

// SortByAverageDesc orders categories worst-first by average, the canonical
// order for bottleneck views. Categories without an average sort last; ties
// break alphabetically so output is deterministic.
func SortByAverageDesc(stats []CategoryStat) {
	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i].Average, stats[j].Average
		switch {
		case a == nil && b == nil:
			return stats[i].Label < stats[j].Label
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		default:
			return stats[i].Label < stats[j].Label
		}
	})
}
