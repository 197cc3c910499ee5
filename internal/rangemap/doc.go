// Package rangemap maps values and half-open intervals through ordered
// chains of piecewise-linear remapping stages.
//
// A stage (Mapping) is a set of rules, each shifting one contiguous source
// range onto a destination range of the same length. Values outside every
// rule map to themselves. Intervals are never enumerated: MapRange splits an
// interval at rule boundaries so a chain of stages costs
// O(intervals × rules) per stage no matter how long the intervals are.
//
// Rules within a stage must have disjoint source ranges. This is a
// precondition of MapValue and MapRange, not something they check;
// Mapping.Validate exists for callers that want to fail fast.
package rangemap
