package mat

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrUninitializedArray = errors.New("uninitialized array")

// NewSymToeplitz builds the symmetric Toeplitz matrix whose first row is c, i.e.
// element (i, j) is c[|i-j|]
func NewSymToeplitz(c []float64) (*mat.SymDense, error) {
	n := len(c)
	if n == 0 {
		return nil, ErrUninitializedArray
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			lag := i - j
			if lag < 0 {
				lag = -lag
			}
			data[i*n+j] = c[lag]
		}
	}
	return mat.NewSymDense(n, data), nil
}
