package timedataset

import (
	"fmt"
	"time"
)

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// ValidateMonthly checks that consecutive time points fall in consecutive calendar months
func (t TimeSlice) ValidateMonthly() error {
	for i := 1; i < len(t); i++ {
		step := MonthsBetween(t[i-1], t[i])
		switch {
		case step == 0:
			return fmt.Errorf("%s at %d, %w", t[i].Format(MonthLayout), i, ErrDuplicateMonth)
		case step < 0:
			return fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		case step > 1:
			return fmt.Errorf(
				"%d months missing between %s and %s, %w",
				step-1, t[i-1].Format(MonthLayout), t[i].Format(MonthLayout), ErrMonthGap,
			)
		}
	}
	return nil
}
