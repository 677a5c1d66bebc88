package forecaster

import "github.com/aouyang1/go-exportcast/arima"

// Options configures the forecaster. The ARIMA order defaults to (1,1,1).
type Options struct {
	ArimaOptions *arima.Options `json:"arima_options"`
}

// NewDefaultOptions returns an ARIMA(1,1,1) forecaster configuration
func NewDefaultOptions() *Options {
	return &Options{
		ArimaOptions: arima.NewDefaultOptions(),
	}
}
