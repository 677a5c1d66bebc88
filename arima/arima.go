// Package arima fits fixed order ARIMA(p,d,q) models by conditional maximum likelihood and
// produces recursive multi-step forecasts. The order is never searched: callers choose it.
package arima

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-exportcast/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// initial moving average coefficient used to seed the optimiser
const initialMA = 0.1

// Model represents a single ARIMA model of a univariate series. After Fit the model holds
// the estimated coefficients and the state needed to forecast from the end of the series.
// A fitted model is not modified by Forecast.
type Model struct {
	opt *Options

	arCoef    []float64
	maCoef    []float64
	intercept float64 // mean of the stationary series, only estimated when d == 0
	sigma2    float64
	logLik    float64
	converged bool
	nIter     int

	y         []float64 // training series on the original scale
	w         []float64 // differenced and centered series
	residuals []float64 // one step innovations aligned with w
	trained   bool
}

// New creates a new model with the given options. If none are provided ARIMA(1,1,1) is used.
func New(opt *Options) (*Model, error) {
	opt, err := opt.validate()
	if err != nil {
		return nil, err
	}
	return &Model{opt: opt}, nil
}

// Order returns the configured model order
func (m *Model) Order() Order {
	if m == nil {
		return Order{}
	}
	return m.opt.Order
}

// Fit estimates the AR and MA coefficients of the differenced series by minimising the
// conditional sum of squared innovations, which maximises the conditional gaussian
// likelihood. Degenerate inputs are reported as errors and never retried.
func (m *Model) Fit(y []float64) error {
	if m == nil {
		return ErrUninitializedModel
	}
	order := m.opt.Order

	if len(y) < order.MinObservations() {
		return fmt.Errorf(
			"%s needs at least %d observations but got %d, %w",
			order, order.MinObservations(), len(y), ErrInsufficientData,
		)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("observation %d, %w", i, ErrNonFiniteValue)
		}
	}
	if floats.Max(y) == floats.Min(y) {
		return ErrConstantSeries
	}

	w := stats.Diff(y, order.D)
	var intercept float64
	if order.D == 0 {
		intercept = stat.Mean(w, nil)
		floats.AddConst(-intercept, w)
	}

	x0 := m.initialParams(w)
	objective := func(x []float64) float64 {
		ar, ma := m.splitParams(x)
		css, _ := conditionalSumOfSquares(w, ar, ma, nil)
		return css
	}

	xHat := x0
	converged := true
	var nIter int
	if len(x0) > 0 {
		settings := &optimize.Settings{
			MajorIterations: m.opt.MaxIterations,
			Converger: &optimize.FunctionConverge{
				Absolute:   m.opt.Tolerance,
				Relative:   m.opt.Tolerance,
				Iterations: 25,
			},
		}
		res, err := optimize.Minimize(optimize.Problem{Func: objective}, x0, settings, &optimize.NelderMead{})
		if res == nil || math.IsNaN(res.F) || math.IsInf(res.F, 0) {
			if err != nil {
				return fmt.Errorf("%s, %v, %w", order, err, ErrFitFailed)
			}
			return fmt.Errorf("%s non-finite objective, %w", order, ErrFitFailed)
		}
		xHat = res.X
		nIter = res.Stats.MajorIterations
		converged = err == nil &&
			res.Status != optimize.IterationLimit &&
			res.Status != optimize.FunctionEvaluationLimit
	}

	ar, ma := m.splitParams(xHat)
	residuals := make([]float64, len(w))
	css, nEff := conditionalSumOfSquares(w, ar, ma, residuals)
	if nEff == 0 || css <= 0 || math.IsInf(css, 0) || math.IsNaN(css) {
		return fmt.Errorf("%s residual sum of squares %v, %w", order, css, ErrFitFailed)
	}

	sigma2 := css / float64(nEff)

	m.arCoef = ar
	m.maCoef = ma
	m.intercept = intercept
	m.sigma2 = sigma2
	m.logLik = -0.5 * float64(nEff) * (math.Log(2*math.Pi*sigma2) + 1)
	m.converged = converged
	m.nIter = nIter
	m.y = append([]float64(nil), y...)
	m.w = w
	m.residuals = residuals
	m.trained = true
	return nil
}

// initialParams seeds the optimiser with Hannan-Rissanen estimates, falling back to
// Yule-Walker AR terms and small positive MA terms, both mapped into the unconstrained space
func (m *Model) initialParams(w []float64) []float64 {
	p, q := m.opt.Order.P, m.opt.Order.Q
	if p+q == 0 {
		return nil
	}

	ar, ma, err := hannanRissanen(w, p, q)
	if err != nil {
		ar, ma = fallbackParams(w, p, q)
	}

	x0 := make([]float64, 0, p+q)
	x0 = append(x0, unconstrainAR(ar)...)
	x0 = append(x0, unconstrainMA(ma)...)
	return x0
}

func fallbackParams(w []float64, p, q int) ([]float64, []float64) {
	ar := make([]float64, p)
	if p > 0 {
		if acf, err := stats.ACF(w, p); err == nil {
			if phi, err := stats.YuleWalker(acf, p); err == nil {
				ar = phi
			}
		}
	}

	ma := make([]float64, q)
	for i := range ma {
		ma[i] = initialMA
	}
	return ar, ma
}

func (m *Model) splitParams(x []float64) ([]float64, []float64) {
	p := m.opt.Order.P
	return constrainAR(x[:p]), constrainMA(x[p:])
}

// conditionalSumOfSquares runs the ARMA recursion over w conditioning on the first p values
// and zero pre-sample innovations. When residuals is non-nil it receives the innovations,
// with zeros for the conditioning values. The number of innovations summed is returned.
func conditionalSumOfSquares(w, ar, ma, residuals []float64) (float64, int) {
	n := len(w)
	p, q := len(ar), len(ma)
	if residuals == nil {
		residuals = make([]float64, n)
	}

	var css float64
	for t := p; t < n; t++ {
		pred := 0.0
		for i := 0; i < p; i++ {
			pred += ar[i] * w[t-i-1]
		}
		for j := 0; j < q && t-j-1 >= 0; j++ {
			pred += ma[j] * residuals[t-j-1]
		}
		e := w[t] - pred
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return math.Inf(1), n - p
		}
		residuals[t] = e
		css += e * e
	}
	return css, n - p
}

// Forecast produces steps recursive forecasts starting the period after the last
// observation. Each step conditions on the previous forecasts with future innovations set to
// zero, and the result is integrated back to the scale of the training series.
func (m *Model) Forecast(steps int) ([]float64, error) {
	if m == nil {
		return nil, ErrUninitializedModel
	}
	if !m.trained {
		return nil, ErrUntrainedModel
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d steps, %w", steps, ErrInvalidSteps)
	}

	n := len(m.w)
	p, q := len(m.arCoef), len(m.maCoef)

	extW := make([]float64, n+steps)
	copy(extW, m.w)
	extE := make([]float64, n+steps)
	copy(extE, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := 0.0
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.arCoef[i] * extW[t-i-1]
		}
		for j := 0; j < q && t-j-1 >= 0; j++ {
			pred += m.maCoef[j] * extE[t-j-1]
		}
		extW[t] = pred
	}

	forecasts := make([]float64, steps)
	copy(forecasts, extW[n:])
	if m.opt.Order.D == 0 {
		floats.AddConst(m.intercept, forecasts)
		return forecasts, nil
	}
	return m.integrate(forecasts), nil
}

// integrate undoes d rounds of differencing by cumulatively summing from the last value of
// each intermediate differenced series
func (m *Model) integrate(forecasts []float64) []float64 {
	d := m.opt.Order.D
	for level := d - 1; level >= 0; level-- {
		series := stats.Diff(m.y, level)
		prev := series[len(series)-1]
		for j := range forecasts {
			forecasts[j] += prev
			prev = forecasts[j]
		}
	}
	return forecasts
}

// ARCoefficients returns a copy of the estimated autoregressive coefficients
func (m *Model) ARCoefficients() []float64 {
	if m == nil {
		return nil
	}
	return append([]float64(nil), m.arCoef...)
}

// MACoefficients returns a copy of the estimated moving average coefficients
func (m *Model) MACoefficients() []float64 {
	if m == nil {
		return nil
	}
	return append([]float64(nil), m.maCoef...)
}

// Residuals returns the one step innovations on the differenced scale
func (m *Model) Residuals() []float64 {
	if m == nil || !m.trained {
		return nil
	}
	return append([]float64(nil), m.residuals...)
}

// FittedValues returns the one step ahead predictions on the scale of the training series.
// The first d+p observations have no prediction and are NaN.
func (m *Model) FittedValues() []float64 {
	if m == nil || !m.trained {
		return nil
	}
	d, p := m.opt.Order.D, m.opt.Order.P

	fitted := make([]float64, len(m.y))
	for t := range fitted {
		if t < d+p {
			fitted[t] = math.NaN()
			continue
		}
		fitted[t] = m.y[t] - m.residuals[t-d]
	}
	return fitted
}

// Summary returns the fit statistics of a trained model
func (m *Model) Summary() (Summary, error) {
	if m == nil {
		return Summary{}, ErrUninitializedModel
	}
	if !m.trained {
		return Summary{}, ErrUntrainedModel
	}

	order := m.opt.Order
	nEff := len(m.w) - order.P
	k := order.P + order.Q + 1
	if order.D == 0 {
		k++
	}
	return Summary{
		Order:          order,
		ARCoefficients: m.ARCoefficients(),
		MACoefficients: m.MACoefficients(),
		Intercept:      m.intercept,
		Sigma2:         m.sigma2,
		LogLikelihood:  m.logLik,
		AIC:            -2*m.logLik + 2*float64(k),
		BIC:            -2*m.logLik + float64(k)*math.Log(float64(nEff)),
		NObs:           len(m.y),
		Iterations:     m.nIter,
		Converged:      m.converged,
	}, nil
}
