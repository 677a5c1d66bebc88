package forecaster

import (
	"fmt"
	"time"
)

// Results is the outcome of a single forecast request. Steps holds every intermediate
// forecast while Forecast is the value at the requested month.
type Results struct {
	Target    time.Time   `json:"target"`
	LastMonth time.Time   `json:"last_month"`
	Horizon   int         `json:"horizon"`
	Steps     []float64   `json:"-"`
	Forecast  float64     `json:"forecast"`
	Axis      []time.Time `json:"axis"`
}

// Message renders the user facing summary of the forecast
func (r *Results) Message() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("the forecast for %s is: %.2f", r.Target.Format(time.DateOnly), r.Forecast)
}
