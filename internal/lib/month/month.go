// Package month implements the calendar-month bucketing used by the
// inscription histogram: a fixed-size window of recent months and the
// zero-fill alignment of counts against it.
package month

import "time"

// Key format for a calendar month bucket.
const KeyLayout = "2006-01"

// Key returns the bucket key ("YYYY-MM") of the month containing t.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// LastN returns the keys of the n most recent calendar months ending at
// the month containing ref (inclusive), in ascending order. The result
// always has exactly n entries regardless of data.
func LastN(ref time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		// Normalizing to the first of the month lets time.Date carry
		// the year over negative month values.
		m := time.Date(ref.Year(), ref.Month()-time.Month(i), 1, 0, 0, 0, 0, ref.Location())
		keys = append(keys, m.Format(KeyLayout))
	}
	return keys
}

// WindowStart returns the first instant of the oldest month in a
// LastN(ref, n) window, for bounding range queries.
func WindowStart(ref time.Time, n int) time.Time {
	return time.Date(ref.Year(), ref.Month()-time.Month(n-1), 1, 0, 0, 0, 0, ref.Location())
}

// FillCounts aligns byMonth positionally against labels, filling months
// with no observations with zero. len(result) == len(labels) always.
func FillCounts(labels []string, byMonth map[string]int) []int {
	counts := make([]int, len(labels))
	for i, label := range labels {
		counts[i] = byMonth[label]
	}
	return counts
}
