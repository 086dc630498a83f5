package aggregate

import (
	"math"

	"github.com/Brommah/hvc/internal/domain"
)

const percentScale = 100

// RoundWhole rounds to the nearest integer. The convention for hour-based
// averages.
func RoundWhole(v float64) float64 {
	return math.Round(v)
}

// Round1 rounds to one decimal place. The convention for score and delta
// averages.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Rate returns count/total as a whole percentage. A zero total yields 0
// rather than a division error.
func Rate(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * percentScale))
}

// Average computes the mean of a numeric field across candidates, ignoring
// null values. Returns nil when no candidate carries a value. The caller
// applies the rounding convention for its metric.
func Average(cands []domain.Candidate, value NumberKey) *float64 {
	var (
		sum   float64
		count int
	)
	for _, c := range cands {
		if v := value(c); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// Count returns how many candidates match the given test.
func Count(cands []domain.Candidate, test func(domain.Candidate) bool) int {
	n := 0
	for _, c := range cands {
		if test(c) {
			n++
		}
	}
	return n
}
