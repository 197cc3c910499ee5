// Package almanac reads the seed almanac text format into seeds and an
// ordered list of remapping stages.
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each map line is "destination source length".
package almanac

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pborges/seedmap/internal/rangemap"
)

var (
	// ErrNoSeeds is returned when the input has no "seeds:" line.
	ErrNoSeeds = errors.New("almanac: no seeds")
	// ErrOddSeedCount is returned when seeds cannot be read as (start, length) pairs.
	ErrOddSeedCount = errors.New("almanac: odd number of seed values")
	// ErrNegativeSeedLength is returned when a (start, length) pair has a negative length.
	ErrNegativeSeedLength = errors.New("almanac: negative seed range length")
	// ErrBrokenChain is returned by Validate when a map does not start where
	// the previous one ended, e.g. seed-to-soil followed by water-to-light.
	ErrBrokenChain = errors.New("almanac: maps do not form a chain")
)

type Almanac struct {
	Seeds []int64
	Maps  []AlmanacMap
}

// AlmanacMap is one named stage, e.g. Input "seed" and Output "soil".
type AlmanacMap struct {
	Input   string
	Output  string
	Mapping *rangemap.Mapping
}

// Stages returns the mappings in file order.
func (a *Almanac) Stages() []*rangemap.Mapping {
	stages := make([]*rangemap.Mapping, len(a.Maps))
	for i, m := range a.Maps {
		stages[i] = m.Mapping
	}
	return stages
}

// Chain returns the almanac's stages as a chain logging to log.
func (a *Almanac) Chain(log *zap.Logger) *rangemap.Chain {
	return rangemap.NewChain(log, a.Stages()...)
}

// SeedIntervals reads Seeds as (start, length) pairs. Zero lengths are
// allowed; negative ones are not.
func (a *Almanac) SeedIntervals() ([]rangemap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddSeedCount, len(a.Seeds))
	}
	intervals := make([]rangemap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] < 0 {
			return nil, fmt.Errorf("%w: seed range %d has length %d", ErrNegativeSeedLength, i/2+1, a.Seeds[i+1])
		}
		intervals = append(intervals, rangemap.Interval{
			Start:  a.Seeds[i],
			Length: a.Seeds[i+1],
		})
	}
	return intervals, nil
}

// TotalSeeds returns how many individual seeds the seed ranges cover.
func (a *Almanac) TotalSeeds() (int64, error) {
	intervals, err := a.SeedIntervals()
	if err != nil {
		return 0, err
	}
	return rangemap.TotalLength(intervals), nil
}

// Validate checks that consecutive maps connect and that no map has
// overlapping or empty rules.
func (a *Almanac) Validate() error {
	for i, m := range a.Maps {
		if i > 0 && a.Maps[i-1].Output != m.Input {
			return fmt.Errorf("%w: %s-to-%s follows %s-to-%s", ErrBrokenChain,
				m.Input, m.Output, a.Maps[i-1].Input, a.Maps[i-1].Output)
		}
		if err := m.Mapping.Validate(); err != nil {
			return err
		}
	}
	return nil
}
