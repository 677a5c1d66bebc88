package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for start time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid start time": {
			tSlice:   TimeSlice(GenerateMonths(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 3)),
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.StartTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEndTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for end time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid end time": {
			tSlice:   TimeSlice(GenerateMonths(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 3)),
			expected: time.Date(1970, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.EndTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestValidateMonthly(t *testing.T) {
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	testData := map[string]struct {
		tSlice TimeSlice
		err    error
	}{
		"empty":      {tSlice: nil},
		"single":     {tSlice: TimeSlice{jan}},
		"contiguous": {tSlice: TimeSlice(GenerateMonths(jan, 14))},
		"duplicate":  {tSlice: TimeSlice{jan, jan}, err: ErrDuplicateMonth},
		"backwards":  {tSlice: TimeSlice{AddMonths(jan, 1), jan}, err: ErrNonMonotonic},
		"gap":        {tSlice: TimeSlice{jan, AddMonths(jan, 3)}, err: ErrMonthGap},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.tSlice.ValidateMonthly()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.Nil(t, err)
		})
	}
}
