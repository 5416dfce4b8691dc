package service

import "time"

// Overlaps reports whether the closed intervals [s1, e1] and [s2, e2]
// intersect. Intervals touching at an endpoint count as overlapping, so
// a booking ending Jan 4 blocks one starting Jan 4.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}
