package aggregate

// Cumulative converts a day-ordered series of per-day increments into a
// running total: each day's value is the previous running total plus that
// day's increment. Used for backlog-trend views where the metric means
// "outstanding as of end of day".
func Cumulative(increments []DayBucket) []DayBucket {
	out := make([]DayBucket, len(increments))
	total := 0
	for i, b := range increments {
		total += b.Count
		out[i] = DayBucket{Date: b.Date, Count: total}
	}
	return out
}
