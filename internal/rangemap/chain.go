package rangemap

import (
	"go.uber.org/zap"
)

// MapValueThrough folds MapValue over stages, left to right.
func MapValueThrough(value int64, stages []*Mapping) int64 {
	for _, m := range stages {
		value = m.MapValue(value)
	}
	return value
}

// MapIntervalsThrough maps every interval through every stage in order,
// re-splitting at each stage. The input slice is not modified.
func MapIntervalsThrough(intervals []Interval, stages []*Mapping) []Interval {
	current := dropEmpty(intervals)
	for _, m := range stages {
		current = mapStage(m, current)
	}
	return current
}

func mapStage(m *Mapping, intervals []Interval) []Interval {
	next := make([]Interval, 0, len(intervals))
	for _, i := range intervals {
		next = append(next, m.MapRange(i)...)
	}
	return next
}

func dropEmpty(intervals []Interval) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, i := range intervals {
		if !i.Empty() {
			out = append(out, i)
		}
	}
	return out
}

// Chain is an ordered, read-only list of stages. It is safe to share one
// Chain between goroutines.
type Chain struct {
	stages []*Mapping
	log    *zap.Logger
}

// NewChain returns a chain over stages. A nil logger disables logging.
func NewChain(log *zap.Logger, stages ...*Mapping) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{stages: stages, log: log}
}

// Stages returns the chain's stages in order.
func (c *Chain) Stages() []*Mapping {
	return c.stages
}

// Len returns the number of stages.
func (c *Chain) Len() int {
	return len(c.stages)
}

// MapValue maps value through every stage, logging each step at debug level.
func (c *Chain) MapValue(value int64) int64 {
	if ce := c.log.Check(zap.DebugLevel, "lookup"); ce != nil {
		path := c.Trace(value)
		fields := make([]zap.Field, 0, len(path)+1)
		fields = append(fields, zap.Int64("input", value))
		for i, m := range c.stages {
			fields = append(fields, zap.Int64(m.Name(), path[i]))
		}
		ce.Write(fields...)
		return path[len(path)-1]
	}
	return MapValueThrough(value, c.stages)
}

// Trace returns the value after each stage. The last element is the
// chain's output; an empty chain yields just the input.
func (c *Chain) Trace(value int64) []int64 {
	if len(c.stages) == 0 {
		return []int64{value}
	}
	path := make([]int64, len(c.stages))
	for i, m := range c.stages {
		value = m.MapValue(value)
		path[i] = value
	}
	return path
}

// MapIntervals maps intervals through every stage. At debug level it logs
// the interval count and total length after each stage.
func (c *Chain) MapIntervals(intervals []Interval) []Interval {
	current := dropEmpty(intervals)
	for _, m := range c.stages {
		current = mapStage(m, current)
		c.log.Debug("stage mapped",
			zap.String("stage", m.Name()),
			zap.Int("rules", m.Len()),
			zap.Int("intervals", len(current)),
			zap.Int64("total_length", TotalLength(current)))
	}
	return current
}
