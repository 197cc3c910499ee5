// Package solve answers both almanac questions: the lowest location for
// individual seeds, and the lowest location for seed ranges.
package solve

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pborges/seedmap/internal/almanac"
	"github.com/pborges/seedmap/internal/rangemap"
)

// Result summarises one almanac.
type Result struct {
	Seeds     int   `json:"seeds"`
	Stages    int   `json:"stages"`
	Intervals int   `json:"intervals"`
	Part1     int64 `json:"part1"`
	Part2     int64 `json:"part2"`
}

func (r Result) String() string {
	return fmt.Sprintf("part1: %d\npart2: %d", r.Part1, r.Part2)
}

// Step is a value after one stage.
type Step struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// Path is the route of one seed through every stage.
type Path struct {
	Seed     int64  `json:"seed"`
	Location int64  `json:"location"`
	Steps    []Step `json:"steps"`
}

type Solver struct {
	log *zap.Logger
}

// New returns a solver. A nil logger disables logging.
func New(log *zap.Logger) *Solver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{log: log}
}

// Part1 treats every seed as a single value.
func (s *Solver) Part1(a *almanac.Almanac) (int64, error) {
	chain := a.Chain(s.log)
	locations := make([]int64, len(a.Seeds))
	for i, seed := range a.Seeds {
		locations[i] = chain.MapValue(seed)
	}
	lowest, err := rangemap.MinValue(locations)
	if err != nil {
		return 0, fmt.Errorf("part1: %w", err)
	}
	return lowest, nil
}

// Part2 treats seeds as (start, length) pairs.
func (s *Solver) Part2(a *almanac.Almanac) (int64, error) {
	out, err := s.mapSeedIntervals(a)
	if err != nil {
		return 0, fmt.Errorf("part2: %w", err)
	}
	lowest, err := rangemap.MinStart(out)
	if err != nil {
		return 0, fmt.Errorf("part2: %w", err)
	}
	return lowest, nil
}

// Solve runs both parts.
func (s *Solver) Solve(a *almanac.Almanac) (Result, error) {
	res := Result{
		Seeds:  len(a.Seeds),
		Stages: len(a.Maps),
	}
	var err error
	if res.Part1, err = s.Part1(a); err != nil {
		return res, err
	}
	out, err := s.mapSeedIntervals(a)
	if err != nil {
		return res, fmt.Errorf("part2: %w", err)
	}
	res.Intervals = len(out)
	if res.Part2, err = rangemap.MinStart(out); err != nil {
		return res, fmt.Errorf("part2: %w", err)
	}
	s.log.Info("solved",
		zap.Int("seeds", res.Seeds),
		zap.Int("stages", res.Stages),
		zap.Int("intervals", res.Intervals),
		zap.Int64("part1", res.Part1),
		zap.Int64("part2", res.Part2))
	return res, nil
}

// FinalIntervals returns the seed ranges after the last stage, ordered by
// start.
func (s *Solver) FinalIntervals(a *almanac.Almanac) ([]rangemap.Interval, error) {
	out, err := s.mapSeedIntervals(a)
	if err != nil {
		return nil, err
	}
	rangemap.SortIntervals(out)
	return out, nil
}

// Lookup traces each value through the almanac.
func (s *Solver) Lookup(a *almanac.Almanac, values ...int64) []Path {
	chain := a.Chain(s.log)
	paths := make([]Path, 0, len(values))
	for _, v := range values {
		p := Path{Seed: v, Location: v}
		if chain.Len() > 0 {
			trace := chain.Trace(v)
			for i, m := range a.Maps {
				p.Steps = append(p.Steps, Step{Category: m.Output, Value: trace[i]})
			}
			p.Location = trace[len(trace)-1]
		}
		paths = append(paths, p)
	}
	return paths
}

func (s *Solver) mapSeedIntervals(a *almanac.Almanac) ([]rangemap.Interval, error) {
	seeds, err := a.SeedIntervals()
	if err != nil {
		return nil, err
	}
	return a.Chain(s.log).MapIntervals(seeds), nil
}
