package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pborges/seedmap/internal/almanac"
	"github.com/pborges/seedmap/internal/rangemap"
)

var (
	// ErrTooManySeeds is returned when a brute force run would exceed Options.MaxSeeds.
	ErrTooManySeeds = errors.New("solve: too many seeds to enumerate")
	// ErrMismatch is returned by Verify when enumeration and interval mapping disagree.
	ErrMismatch = errors.New("solve: brute force disagrees with interval mapping")
)

// Options controls the brute force worker pool.
type Options struct {
	Workers   int
	BatchSize int64
	// MaxSeeds caps how many seeds may be enumerated; zero means no cap.
	MaxSeeds int64
}

// DefaultOptions matches the settings that finished the real input in
// minutes rather than hours.
func DefaultOptions() Options {
	return Options{
		Workers:   10,
		BatchSize: 1_000_000,
		MaxSeeds:  10_000_000,
	}
}

// BruteForce looks up every seed of every seed range individually and
// returns the lowest location. Seed ranges are cut into batches and fanned
// out to opts.Workers goroutines.
func (s *Solver) BruteForce(ctx context.Context, a *almanac.Almanac, opts Options) (int64, error) {
	seeds, err := a.SeedIntervals()
	if err != nil {
		return 0, err
	}
	total := rangemap.TotalLength(seeds)
	if total == 0 {
		return 0, fmt.Errorf("brute force: %w", rangemap.ErrEmptyInput)
	}
	if opts.MaxSeeds > 0 && total > opts.MaxSeeds {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManySeeds, total, opts.MaxSeeds)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultOptions().BatchSize
	}

	start := time.Now()
	stages := a.Stages()
	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan rangemap.Interval)

	// Feed work to the workers; closing batches tells them to stop.
	g.Go(func() error {
		defer close(batches)
		for idx, r := range seeds {
			rangeStart := time.Now()
			for b := r.Start; b < r.End(); b += opts.BatchSize {
				batch := rangemap.Interval{Start: b, Length: min(opts.BatchSize, r.End()-b)}
				select {
				case batches <- batch:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			s.log.Debug("seed range dispatched",
				zap.Int("range", idx+1),
				zap.Int("of", len(seeds)),
				zap.Stringer("seeds", r),
				zap.Duration("elapsed", time.Since(rangeStart)))
		}
		return nil
	})

	lowestByWorker := make([]int64, opts.Workers)
	foundByWorker := make([]bool, opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		g.Go(func() error {
			for batch := range batches {
				if err := ctx.Err(); err != nil {
					return err
				}
				res := lowestInBatch(stages, batch)
				if !foundByWorker[w] || res < lowestByWorker[w] {
					lowestByWorker[w] = res
					foundByWorker[w] = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("brute force: %w", err)
	}

	var lowest []int64
	for w, found := range foundByWorker {
		if found {
			lowest = append(lowest, lowestByWorker[w])
		}
	}
	res, err := rangemap.MinValue(lowest)
	if err != nil {
		return 0, fmt.Errorf("brute force: %w", err)
	}
	s.log.Info("brute force finished",
		zap.Int64("seeds", total),
		zap.Int("workers", opts.Workers),
		zap.Int64("lowest", res),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func lowestInBatch(stages []*rangemap.Mapping, batch rangemap.Interval) int64 {
	lowest := rangemap.MapValueThrough(batch.Start, stages)
	for seed := batch.Start + 1; seed < batch.End(); seed++ {
		if location := rangemap.MapValueThrough(seed, stages); location < lowest {
			lowest = location
		}
	}
	return lowest
}

// Verify checks a part2 answer already computed by interval mapping against
// BruteForce.
func (s *Solver) Verify(ctx context.Context, a *almanac.Almanac, part2 int64, opts Options) error {
	want, err := s.BruteForce(ctx, a, opts)
	if err != nil {
		return err
	}
	if part2 != want {
		return fmt.Errorf("%w: intervals %d, enumeration %d", ErrMismatch, part2, want)
	}
	return nil
}
