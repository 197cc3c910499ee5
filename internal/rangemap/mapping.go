package rangemap

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrInvalidRule is returned by Validate for a rule with a non-positive length.
	ErrInvalidRule = errors.New("rangemap: invalid rule")
	// ErrOverlappingRules is returned by Validate when two source ranges intersect.
	ErrOverlappingRules = errors.New("rangemap: overlapping rules")
)

// Rule maps [Source, Source+Length) onto [Destination, Destination+Length).
type Rule struct {
	Source      int64
	Destination int64
	Length      int64
}

// SourceEnd returns the first value past the rule's source range.
func (r Rule) SourceEnd() int64 {
	return r.Source + r.Length
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s",
		Interval{Start: r.Source, Length: r.Length},
		Interval{Start: r.Destination, Length: r.Length})
}

// Mapping is one remapping stage. Values not covered by a rule map to
// themselves. A Mapping must not be modified once it is shared with a Chain.
type Mapping struct {
	name  string
	rules []Rule // sorted by Source
}

// NewMapping returns a stage holding the given rules.
func NewMapping(name string, rules ...Rule) *Mapping {
	m := &Mapping{name: name}
	for _, r := range rules {
		m.AddRule(r.Source, r.Destination, r.Length)
	}
	return m
}

// Name returns the stage name, e.g. "seed-to-soil".
func (m *Mapping) Name() string {
	return m.name
}

// Len returns the number of rules in the stage.
func (m *Mapping) Len() int {
	return len(m.rules)
}

// Rules returns a copy of the stage's rules ordered by source.
func (m *Mapping) Rules() []Rule {
	return slices.Clone(m.rules)
}

// AddRule adds a rule to the stage. Rules are neither merged nor checked
// against each other; the caller guarantees disjoint source ranges.
func (m *Mapping) AddRule(source, destination, length int64) {
	idx := sort.Search(len(m.rules), func(i int) bool {
		return m.rules[i].Source > source
	})
	m.rules = slices.Insert(m.rules, idx, Rule{
		Source:      source,
		Destination: destination,
		Length:      length,
	})
}

// MapValue returns the image of v under the stage.
func (m *Mapping) MapValue(v int64) int64 {
	for _, r := range m.rules {
		if v < r.Source {
			break
		}
		if v < r.SourceEnd() {
			return v - r.Source + r.Destination
		}
	}
	return v
}

// MapRange returns the image of in under the stage as a set of intervals,
// one per maximal run of input values handled by the same rule or by the
// identity default. Output lengths sum to in.Length; an empty input yields
// no intervals.
func (m *Mapping) MapRange(in Interval) []Interval {
	if in.Empty() {
		return nil
	}
	out := make([]Interval, 0, 3)

	// [start, start+remaining) is the part of in no rule has claimed yet.
	// Rules are visited in source order so it only ever shrinks from the left.
	start, remaining := in.Start, in.Length
	for _, r := range m.rules {
		if remaining <= 0 {
			break
		}
		if r.Length <= 0 {
			continue
		}
		end := start + remaining
		srcEnd := r.SourceEnd()
		if end <= r.Source {
			break
		}
		if start >= srcEnd {
			continue
		}

		switch {
		case start >= r.Source && end <= srcEnd:
			// fully inside
			out = append(out, Interval{Start: r.Destination + (start - r.Source), Length: remaining})
			remaining = 0
		case start < r.Source && end <= srcEnd:
			// overhangs on the left
			out = append(out,
				Interval{Start: start, Length: r.Source - start},
				Interval{Start: r.Destination, Length: end - r.Source})
			remaining = 0
		case start >= r.Source:
			// overhangs on the right
			out = append(out, Interval{Start: r.Destination + (start - r.Source), Length: srcEnd - start})
			start, remaining = srcEnd, end-srcEnd
		default:
			// straddles the whole rule
			out = append(out,
				Interval{Start: start, Length: r.Source - start},
				Interval{Start: r.Destination, Length: r.Length})
			start, remaining = srcEnd, end-srcEnd
		}
	}
	if remaining > 0 {
		out = append(out, Interval{Start: start, Length: remaining})
	}
	return out
}

// Validate checks that every rule has a positive length and that no two
// source ranges intersect. MapValue and MapRange assume both hold.
func (m *Mapping) Validate() error {
	for i, r := range m.rules {
		if r.Length <= 0 {
			return fmt.Errorf("%w: %s: source %d has length %d", ErrInvalidRule, m.name, r.Source, r.Length)
		}
		if i > 0 && r.Source < m.rules[i-1].SourceEnd() {
			return fmt.Errorf("%w: %s: %s intersects %s", ErrOverlappingRules, m.name, m.rules[i-1], r)
		}
	}
	return nil
}
