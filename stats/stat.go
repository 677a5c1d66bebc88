// Package stats holds the sample statistics used to initialise and evaluate ARIMA fits
package stats

import (
	"errors"
	"fmt"

	tsmat "github.com/aouyang1/go-exportcast/mat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNegativeOrder      = errors.New("order must be non-negative")
	ErrInsufficientSample = errors.New("sample too short for requested lag")
	ErrSingularACF        = errors.New("autocorrelation matrix is not positive definite")
)

// Diff applies d rounds of first differencing. The output has len(y)-d values,
// or none when d >= len(y).
func Diff(y []float64, d int) []float64 {
	out := make([]float64, len(y))
	copy(out, y)
	for i := 0; i < d; i++ {
		if len(out) < 2 {
			return []float64{}
		}
		next := make([]float64, len(out)-1)
		floats.SubTo(next, out[1:], out[:len(out)-1])
		out = next
	}
	return out
}

// ACF returns the sample autocorrelation at lags 0 through maxLag using the biased
// estimator, so acf[0] is always 1 for a non-constant sample.
func ACF(y []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, ErrNegativeOrder
	}
	n := len(y)
	if n <= maxLag {
		return nil, fmt.Errorf("lag %d with %d samples, %w", maxLag, n, ErrInsufficientSample)
	}

	mean := stat.Mean(y, nil)
	centered := make([]float64, n)
	copy(centered, y)
	floats.AddConst(-mean, centered)

	c0 := floats.Dot(centered, centered)
	acf := make([]float64, maxLag+1)
	if c0 == 0 {
		return acf, nil
	}
	for lag := 0; lag <= maxLag; lag++ {
		acf[lag] = floats.Dot(centered[:n-lag], centered[lag:]) / c0
	}
	return acf, nil
}

// YuleWalker solves the Yule-Walker equations R phi = r for an AR model of the given
// order where R is the Toeplitz autocorrelation matrix.
func YuleWalker(acf []float64, order int) ([]float64, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	if order == 0 {
		return []float64{}, nil
	}
	if len(acf) <= order {
		return nil, fmt.Errorf("order %d with %d autocorrelations, %w", order, len(acf), ErrInsufficientSample)
	}

	r, err := tsmat.NewSymToeplitz(acf[:order])
	if err != nil {
		return nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(r); !ok {
		return nil, ErrSingularACF
	}

	var phi mat.VecDense
	if err := chol.SolveVecTo(&phi, mat.NewVecDense(order, append([]float64(nil), acf[1:order+1]...))); err != nil {
		return nil, fmt.Errorf("unable to solve yule-walker equations, %w", err)
	}
	return mat.Col(nil, 0, &phi), nil
}
