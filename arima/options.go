package arima

import "fmt"

const (
	DefaultMaxIterations = 500
	DefaultTolerance     = 1e-8

	// minimum number of residuals left for estimation beyond the order terms
	minDegreesOfFreedom = 2
)

// Order represents the ARIMA (p, d, q) order
type Order struct {
	P int `json:"p"` // autoregressive lags
	D int `json:"d"` // rounds of differencing
	Q int `json:"q"` // moving average lags
}

func (o Order) String() string {
	return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
}

// Validate returns ErrInvalidOrder if any term is negative
func (o Order) Validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 {
		return fmt.Errorf("%s, %w", o, ErrInvalidOrder)
	}
	return nil
}

// MinObservations is the shortest series that can be fit with this order
func (o Order) MinObservations() int {
	return o.D + o.P + o.Q + minDegreesOfFreedom + 1
}

// Options configures the model order and the likelihood optimiser
type Options struct {
	Order Order `json:"order"`

	// MaxIterations caps the Nelder-Mead major iterations
	MaxIterations int `json:"max_iterations"`

	// Tolerance is the absolute and relative change in the objective below which the
	// optimiser is considered converged
	Tolerance float64 `json:"tolerance"`
}

// NewDefaultOptions returns an ARIMA(1,1,1) configuration
func NewDefaultOptions() *Options {
	return &Options{
		Order:         Order{P: 1, D: 1, Q: 1},
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

func (o *Options) validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if err := o.Order.Validate(); err != nil {
		return nil, err
	}

	out := *o
	if out.MaxIterations <= 0 {
		out.MaxIterations = DefaultMaxIterations
	}
	if out.Tolerance <= 0 {
		out.Tolerance = DefaultTolerance
	}
	return &out, nil
}
