package web

import (
	"fmt"
	"time"

	forecaster "github.com/aouyang1/go-exportcast"
	"github.com/aouyang1/go-exportcast/ingest"
	"github.com/aouyang1/go-exportcast/timedataset"
)

// Observation is a single monthly total of a json request
type Observation struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// ForecastRequest is the body of POST /api/v1/forecast
type ForecastRequest struct {
	Date string        `json:"date"`
	Data []Observation `json:"data"`
}

// ForecastResponse is returned for a successful forecast
type ForecastResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Result  *forecaster.Results `json:"result"`
	Model   *forecaster.Model   `json:"model,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (r ForecastRequest) parse(opt *ingest.Options) (*timedataset.TimeDataset, time.Time, error) {
	if r.Date == "" {
		return nil, time.Time{}, ErrMissingDate
	}
	target, err := ingest.ParseMonth(r.Date, opt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("target date, %w", err)
	}
	if len(r.Data) == 0 {
		return nil, time.Time{}, ErrNoData
	}

	t := make([]time.Time, 0, len(r.Data))
	y := make([]float64, 0, len(r.Data))
	for i, obs := range r.Data {
		month, err := ingest.ParseMonth(obs.Month, opt)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("observation %d, %w", i, err)
		}
		t = append(t, month)
		y = append(y, obs.Value)
	}

	td, err := timedataset.NewMonthlyDataset(t, y)
	if err != nil {
		return nil, time.Time{}, err
	}
	return td, target, nil
}
