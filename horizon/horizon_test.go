package horizon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	last := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	testData := map[string]struct {
		target   time.Time
		expected int
		err      error
	}{
		"three months out": {
			target:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		"day of month ignored": {
			target:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		"several years out": {
			target:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			expected: 30,
		},
		"same month": {
			target:   time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
			err:      ErrDateInData,
		},
		"same month later day": {
			target:   time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC),
			expected: 0,
			err:      ErrDateInData,
		},
		"earlier month": {
			target:   time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			expected: -1,
			err:      ErrDateInData,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			h, err := Resolve(last, td.target)
			assert.Equal(t, td.expected, h)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
		})
	}
}

func TestResolveFormula(t *testing.T) {
	last := time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC)
	for year := 2019; year <= 2024; year++ {
		for month := time.January; month <= time.December; month++ {
			target := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
			expected := (year-2019)*12 + int(month) - int(time.July)

			h, err := Resolve(last, target)
			assert.Equal(t, expected, h)
			if expected >= 1 {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, ErrDateInData)
			}
		}
	}
}

func TestAxis(t *testing.T) {
	last := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	res := Axis(last, 3)
	expected := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, expected, res)

	assert.Empty(t, Axis(last, 0))
	assert.Empty(t, Axis(last, -2))

	long := Axis(last, 27)
	require.Len(t, long, 27)
	for i := 1; i < len(long); i++ {
		assert.Equal(t, long[i-1].AddDate(0, 1, 0), long[i])
	}
}
