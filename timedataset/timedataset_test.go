package timedataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthlyDataset(t *testing.T) {
	testData := map[string]struct {
		t        []time.Time
		y        []float64
		expected *TimeDataset
		err      error
	}{
		"no training data": {
			err: ErrNoTrainingData,
		},
		"length mismatch": {
			y:   []float64{1},
			err: ErrDatasetLenMismatch,
		},
		"duplicate month": {
			t: []time.Time{
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, 2},
			err: ErrDuplicateMonth,
		},
		"out of order": {
			t: []time.Time{
				time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, 2},
			err: ErrNonMonotonic,
		},
		"missing month": {
			t: []time.Time{
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, 2},
			err: ErrMonthGap,
		},
		"nan value": {
			t: []time.Time{
				time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, math.NaN()},
			err: ErrNonFiniteValue,
		},
		"truncates to month start": {
			t: []time.Time{
				time.Date(2023, 11, 30, 13, 0, 0, 0, time.UTC),
				time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			y: []float64{1, 2, 3},
			expected: &TimeDataset{
				T: []time.Time{
					time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
				Y: []float64{1, 2, 3},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := NewMonthlyDataset(td.t, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestNewMonthlyDatasetIdempotent(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	tSeries := []time.Time{
		time.Date(2023, 10, 5, 8, 0, 0, 0, loc),
		time.Date(2023, 11, 1, 0, 0, 0, 0, loc),
		time.Date(2023, 12, 20, 23, 59, 0, 0, loc),
	}
	y := []float64{120.5, 98.1, 100}

	first, err := NewMonthlyDataset(tSeries, y)
	require.Nil(t, err)

	second, err := NewMonthlyDataset(first.T, first.Y)
	require.Nil(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), second.LastMonth())
}

func TestNewMonthlyDatasetCopiesInput(t *testing.T) {
	tSeries := GenerateMonths(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	y := []float64{1, 2}

	ds, err := NewMonthlyDataset(tSeries, y)
	require.Nil(t, err)

	y[0] = 10
	assert.Equal(t, []float64{1, 2}, ds.Y)
}

func TestCopy(t *testing.T) {
	tSeries := GenerateMonths(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2)

	y := []float64{0, 1}
	ds, err := NewMonthlyDataset(tSeries, y)
	require.Nil(t, err)

	nextDs := ds.Copy()
	require.Equal(t, ds, nextDs)

	ds.T[0] = time.Date(1970, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NotEqual(t, nextDs, ds)

	var empty *TimeDataset
	assert.Nil(t, empty.Copy())
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.LastMonth().IsZero())
}
