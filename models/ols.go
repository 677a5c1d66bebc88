// Package models holds the linear regression used to seed ARIMA coefficient estimates
package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// OLSRegression computes ordinary least squares using QR factorization. The design matrix is
// used as given, so callers needing an intercept add a column of ones.
type OLSRegression struct {
	coef []float64
	fit  bool
}

func NewOLSRegression() *OLSRegression {
	return &OLSRegression{}
}

func (o *OLSRegression) Fit(x mat.Matrix, y []float64) error {
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetArray
	}
	m, n := x.Dims()
	if len(y) != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", m, len(y), ErrTargetLenMismatch)
	}
	if m < n {
		return fmt.Errorf("%d rows for %d features, %w", m, n, ErrUnderdetermined)
	}

	qr := new(mat.QR)
	qr.Factorize(x)

	c := mat.NewVecDense(n, nil)
	if err := qr.SolveVecTo(c, false, mat.NewVecDense(m, y)); err != nil {
		return fmt.Errorf("%v, %w", err, ErrSingularDesign)
	}
	o.coef = mat.Col(nil, 0, c)
	o.fit = true
	return nil
}

// Coef returns a copy of the fitted coefficients, or nil before Fit succeeds
func (o *OLSRegression) Coef() []float64 {
	if !o.fit {
		return nil
	}
	c := make([]float64, len(o.coef))
	copy(c, o.coef)
	return c
}
