package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pborges/seedmap/internal/almanac"
	"github.com/pborges/seedmap/internal/rangemap"
	"github.com/pborges/seedmap/internal/solve"
)

func Test_sample(t *testing.T) {
	a, err := almanac.ParseString(almanac.Sample)
	require.NoError(t, err)

	lowest, err := solve.New(nil).Part2(a)
	require.NoError(t, err)
	assert.Equal(t, int64(46), lowest)

	total, err := a.TotalSeeds()
	require.NoError(t, err)
	assert.Equal(t, int64(27), total)
}

func Test_sampleThreadedBatched(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, err := almanac.ParseString(almanac.Sample)
	require.NoError(t, err)

	lowest, err := solve.New(nil).BruteForce(context.Background(), a, solve.Options{Workers: 10, BatchSize: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(46), lowest)
}

// Seed ranges far too large to enumerate still map in a handful of steps.
func Test_hugeRanges(t *testing.T) {
	a, err := almanac.ParseString(almanac.Sample)
	require.NoError(t, err)
	a.Seeds = []int64{0, 1 << 40, 1 << 41, 1 << 40}

	seeds, err := a.SeedIntervals()
	require.NoError(t, err)
	out := a.Chain(nil).MapIntervals(seeds)

	assert.Equal(t, int64(1<<41), rangemap.TotalLength(out))
	lowest, err := rangemap.MinStart(out)
	require.NoError(t, err)
	assert.Equal(t, int64(0), lowest)
}
