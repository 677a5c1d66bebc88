package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	last := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	testData := map[string]struct {
		target   time.Time
		expected int
	}{
		"same month":      {time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 0},
		"previous month":  {time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), -1},
		"next year march": {time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 3},
		"two years out":   {time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 24},
		"two years back":  {time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC), -24},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, MonthsBetween(last, td.target))
		})
	}
}

func TestAddMonths(t *testing.T) {
	start := time.Date(2023, 12, 31, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, 1))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, 2))
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, 0))
	assert.Equal(t, time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, -12))
}

func TestMonthStart(t *testing.T) {
	assert.True(t, MonthStart(time.Time{}).IsZero())

	loc := time.FixedZone("east", 9*60*60)
	// 2024-01-01 02:00 in the east zone is still december in UTC, the month follows the zone
	in := time.Date(2024, 1, 1, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MonthStart(in))
}
