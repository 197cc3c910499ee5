package rangemap

import "errors"

// ErrEmptyInput is returned when a minimum is requested over nothing.
var ErrEmptyInput = errors.New("rangemap: empty input")

// MinValue returns the smallest of values.
func MinValue(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest, nil
}

// MinStart returns the smallest value covered by any of the intervals,
// which is the smallest Start among the non-empty ones.
func MinStart(intervals []Interval) (int64, error) {
	found := false
	var lowest int64
	for _, i := range intervals {
		if i.Empty() {
			continue
		}
		if !found || i.Start < lowest {
			lowest = i.Start
			found = true
		}
	}
	if !found {
		return 0, ErrEmptyInput
	}
	return lowest, nil
}
