// Package forecaster predicts the total of a monthly series at a future month using a fixed
// order ARIMA model. A request flows through the horizon resolver, the model fit and the
// extraction of the step that lands on the requested month.
package forecaster

import (
	"fmt"
	"io"
	"time"

	"github.com/aouyang1/go-exportcast/arima"
	"github.com/aouyang1/go-exportcast/horizon"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
)

// Forecaster fits an ARIMA model to a monthly dataset and forecasts future months
type Forecaster struct {
	opt *Options

	model *arima.Model

	fitTrainingData *timedataset.TimeDataset
}

// New creates a new instance of a Forecaster using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	model, err := arima.New(opt.ArimaOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize arima model, %w", err)
	}
	return &Forecaster{
		opt:   opt,
		model: model,
	}, nil
}

// Fit estimates the model on the monthly dataset. The dataset is copied so later changes to
// td do not affect the fit.
func (f *Forecaster) Fit(td *timedataset.TimeDataset) error {
	if td.Len() == 0 {
		return timedataset.ErrNoTrainingData
	}
	if err := f.model.Fit(td.Y); err != nil {
		return fmt.Errorf("unable to fit %s, %w", f.model.Order(), err)
	}
	f.fitTrainingData = td.Copy()
	return nil
}

// Predict forecasts the value at the month of target. The target must fall after the last
// month of the training data.
func (f *Forecaster) Predict(target time.Time) (*Results, error) {
	if f.fitTrainingData == nil {
		return nil, ErrUntrainedForecaster
	}
	h, err := horizon.Resolve(f.fitTrainingData.LastMonth(), target)
	if err != nil {
		return nil, err
	}
	return f.predict(target, h)
}

func (f *Forecaster) predict(target time.Time, h int) (*Results, error) {
	steps, err := f.model.Forecast(h)
	if err != nil {
		return nil, fmt.Errorf("unable to forecast %d steps, %w", h, err)
	}
	value, err := extract(steps, h)
	if err != nil {
		return nil, err
	}

	last := f.fitTrainingData.LastMonth()
	return &Results{
		Target:    target,
		LastMonth: last,
		Horizon:   h,
		Steps:     steps,
		Forecast:  value,
		Axis:      horizon.Axis(last, h),
	}, nil
}

// extract selects the forecast at the requested horizon. Step i of steps is the forecast i+1
// months past the last observation.
func extract(steps []float64, h int) (float64, error) {
	if h < 1 || len(steps) != h {
		return 0, fmt.Errorf("expected %d forecast steps but got %d, %w", h, len(steps), ErrHorizonMismatch)
	}
	return steps[h-1], nil
}

// TrainingData returns the training data used to fit the current forecaster model
func (f *Forecaster) TrainingData() *timedataset.TimeDataset {
	return f.fitTrainingData
}

// Model returns a serializeable view of the fitted forecaster
func (f *Forecaster) Model() (Model, error) {
	if f.fitTrainingData == nil {
		return Model{}, ErrUntrainedForecaster
	}
	summary, err := f.model.Summary()
	if err != nil {
		return Model{}, err
	}
	return Model{
		TrainStartMonth: f.fitTrainingData.T[0],
		TrainEndMonth:   f.fitTrainingData.LastMonth(),
		Options:         f.opt,
		Arima:           &summary,
	}, nil
}

// PlotForecast uses the Apache Echarts library to render an html page with the observed series
// and the forecast months of res
func (f *Forecaster) PlotForecast(w io.Writer, res *Results) error {
	if f.fitTrainingData == nil {
		return ErrUntrainedForecaster
	}
	return PlotForecast(w, f.fitTrainingData, res)
}

// PlotForecast renders the forecast chart of td and res as an html page into w
func PlotForecast(w io.Writer, td *timedataset.TimeDataset, res *Results) error {
	page := components.NewPage()
	page.PageTitle = chartTitle
	page.AddCharts(LineForecast(td, res))
	return page.Render(w)
}

// Run executes one forecast request. The horizon is resolved before any fitting so a target
// inside the data fails fast. Every call fits its own model.
func Run(td *timedataset.TimeDataset, target time.Time, opt *Options) (*Results, *Forecaster, error) {
	if td.Len() == 0 {
		return nil, nil, timedataset.ErrNoTrainingData
	}
	h, err := horizon.Resolve(td.LastMonth(), target)
	if err != nil {
		return nil, nil, err
	}

	f, err := New(opt)
	if err != nil {
		return nil, nil, err
	}
	if err := f.Fit(td); err != nil {
		return nil, nil, err
	}
	res, err := f.predict(target, h)
	if err != nil {
		return nil, nil, err
	}
	return res, f, nil
}
