package rangemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinValue(t *testing.T) {
	got, err := MinValue([]int64{82, 43, 86, 35})
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)

	got, err = MinValue([]int64{-4})
	require.NoError(t, err)
	assert.Equal(t, int64(-4), got)
}

func TestMinValue_Empty(t *testing.T) {
	_, err := MinValue(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestMinStart(t *testing.T) {
	got, err := MinStart([]Interval{{90, 8}, {50, 2}, {100, 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), got)
}

func TestMinStart_IgnoresEmptyIntervals(t *testing.T) {
	got, err := MinStart([]Interval{{1, 0}, {7, 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = MinStart([]Interval{{1, 0}})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestMinStart_Empty(t *testing.T) {
	_, err := MinStart(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestInterval(t *testing.T) {
	i := Interval{Start: 90, Length: 20}
	assert.Equal(t, int64(110), i.End())
	assert.True(t, i.Contains(90))
	assert.True(t, i.Contains(109))
	assert.False(t, i.Contains(110))
	assert.False(t, i.Empty())
	assert.True(t, Interval{Start: 3}.Empty())
	assert.Equal(t, "[90,110)", i.String())

	set := []Interval{{5, 2}, {1, 9}, {1, 3}}
	SortIntervals(set)
	assert.Equal(t, []Interval{{1, 3}, {1, 9}, {5, 2}}, set)
	assert.Equal(t, int64(14), TotalLength(set))
}
