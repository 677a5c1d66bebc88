package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMonotonic       = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrDuplicateMonth     = errors.New("month appears more than once")
	ErrMonthGap           = errors.New("months are not contiguous")
	ErrNonFiniteValue     = errors.New("observation is NaN or infinite")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	T []time.Time `json:"time"`
	Y []float64   `json:"values"`
}

// NewMonthlyDataset returns a TimeDataset indexed by calendar month. Every time point is
// truncated to the first day of its month at midnight UTC. The resulting index must advance
// exactly one month per observation: duplicate months, out of order months and gaps are
// rejected rather than repaired. Observations must be finite.
//
// Calling NewMonthlyDataset on the T and Y of a dataset it produced returns an equal dataset.
func NewMonthlyDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if err := validateLen(t, y); err != nil {
		return nil, err
	}

	months := make([]time.Time, len(t))
	for i, tPnt := range t {
		months[i] = MonthStart(tPnt)
	}

	if err := TimeSlice(months).ValidateMonthly(); err != nil {
		return nil, err
	}

	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value at %s, %w", months[i].Format(MonthLayout), ErrNonFiniteValue)
		}
	}

	return newCopy(months, y), nil
}

func validateLen(t []time.Time, y []float64) error {
	if len(y) == 0 {
		return ErrNoTrainingData
	}
	if len(t) != len(y) {
		return fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}
	return nil
}

func newCopy(t []time.Time, y []float64) *TimeDataset {
	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(y))
	copy(tSeries, t)
	copy(ySeries, y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// Copy returns a deep copy of the dataset
func (td *TimeDataset) Copy() *TimeDataset {
	if td == nil {
		return nil
	}
	return newCopy(td.T, td.Y)
}

// Len returns the number of observations
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

// LastMonth returns the month of the final observation. The zero time is returned for an
// empty dataset.
func (td *TimeDataset) LastMonth() time.Time {
	if td == nil {
		return time.Time{}
	}
	return MonthStart(TimeSlice(td.T).EndTime())
}
