// Package horizon converts a target calendar date into a monthly step count relative to the
// last observed month and derives the months those steps cover.
package horizon

import (
	"errors"
	"fmt"
	"time"

	"github.com/aouyang1/go-exportcast/timedataset"
)

// ErrDateInData is returned when the target month is not after the last observed month
var ErrDateInData = errors.New("the entered date is already present in the data")

// Resolve returns the number of monthly steps from last to target. Only the year and month
// of each date are used. A horizon below one means the target is already covered by the
// data and ErrDateInData is returned alongside it.
func Resolve(last, target time.Time) (int, error) {
	h := timedataset.MonthsBetween(last, target)
	if h <= 0 {
		return h, fmt.Errorf(
			"target %s against last observed month %s, %w",
			target.Format(time.DateOnly), last.Format(timedataset.MonthLayout), ErrDateInData,
		)
	}
	return h, nil
}

// Axis returns h months starting the month after last, each at the first day of the month.
// A non-positive h returns an empty axis.
func Axis(last time.Time, h int) []time.Time {
	if h <= 0 {
		return []time.Time{}
	}
	return timedataset.GenerateMonths(timedataset.AddMonths(last, 1), h)
}
