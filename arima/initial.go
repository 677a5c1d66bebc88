package arima

import (
	"errors"
	"math"

	"github.com/aouyang1/go-exportcast/models"
	"github.com/aouyang1/go-exportcast/stats"
	"gonum.org/v1/gonum/mat"
)

var errUnusableStart = errors.New("hannan-rissanen estimates are not stationary or invertible")

// longAROrder is the order of the autoregression whose residuals stand in for the unobserved
// innovations. It grows with ln(n)^2, is at least twice the largest model order and leaves
// two thirds of the sample for the regression.
func longAROrder(n, p, q int) int {
	m := int(math.Floor(math.Pow(math.Log(float64(n)), 2)))
	if lower := 2 * max(p, q); m < lower {
		m = lower
	}
	if upper := n / 3; m > upper {
		m = upper
	}
	return max(m, 1)
}

// hannanRissanen estimates ARMA(p,q) coefficients of w in two regressions. A long
// autoregression estimates the innovations, then w is regressed on its own lags and the
// lagged innovation estimates.
func hannanRissanen(w []float64, p, q int) ([]float64, []float64, error) {
	n := len(w)
	m := longAROrder(n, p, q)

	acf, err := stats.ACF(w, m)
	if err != nil {
		return nil, nil, err
	}
	phi, err := stats.YuleWalker(acf, m)
	if err != nil {
		return nil, nil, err
	}

	resid := make([]float64, n)
	for t := m; t < n; t++ {
		pred := 0.0
		for i, c := range phi {
			pred += c * w[t-i-1]
		}
		resid[t] = w[t] - pred
	}

	start := max(m+q, p)
	rows := n - start
	if rows <= p+q {
		return nil, nil, stats.ErrInsufficientSample
	}

	x := mat.NewDense(rows, p+q, nil)
	y := make([]float64, rows)
	for r := 0; r < rows; r++ {
		t := start + r
		y[r] = w[t]
		for i := 0; i < p; i++ {
			x.Set(r, i, w[t-i-1])
		}
		for j := 0; j < q; j++ {
			x.Set(r, p+j, resid[t-j-1])
		}
	}

	ols := models.NewOLSRegression()
	if err := ols.Fit(x, y); err != nil {
		return nil, nil, err
	}

	coef := ols.Coef()
	for _, c := range coef {
		if math.Abs(c) >= 1 || math.IsNaN(c) {
			return nil, nil, errUnusableStart
		}
	}
	return coef[:p], coef[p:], nil
}
