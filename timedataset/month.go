package timedataset

import "time"

// MonthLayout is the layout used when a month is rendered for display
const MonthLayout = "2006-01"

// MonthStart returns midnight UTC on the first day of the calendar month containing t.
// The year and month are read in t's own location.
func MonthStart(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween counts the calendar months from a to b ignoring the day of month. It is
// negative when b falls in an earlier month than a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// AddMonths returns the first day of the month n months after the month containing t
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}
