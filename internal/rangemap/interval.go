package rangemap

import (
	"fmt"
	"sort"
)

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  int64 `json:"start"`
	Length int64 `json:"length"`
}

// End returns the first value past the interval.
func (i Interval) End() int64 {
	return i.Start + i.Length
}

// Empty reports whether the interval covers no values.
func (i Interval) Empty() bool {
	return i.Length <= 0
}

// Contains reports whether v lies inside the interval.
func (i Interval) Contains(v int64) bool {
	return v >= i.Start && v < i.End()
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End())
}

// TotalLength sums the lengths of all intervals.
func TotalLength(intervals []Interval) (tot int64) {
	for _, i := range intervals {
		tot = tot + i.Length
	}
	return tot
}

// SortIntervals orders intervals by start, then by length.
func SortIntervals(intervals []Interval) {
	sort.Slice(intervals, func(a, b int) bool {
		if intervals[a].Start != intervals[b].Start {
			return intervals[a].Start < intervals[b].Start
		}
		return intervals[a].Length < intervals[b].Length
	})
}
