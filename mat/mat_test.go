package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewSymToeplitz(t *testing.T) {
	testData := map[string]struct {
		c        []float64
		expected [][]float64
		err      error
	}{
		"nil input": {
			err: ErrUninitializedArray,
		},
		"single element": {
			c:        []float64{1},
			expected: [][]float64{{1}},
		},
		"three lags": {
			c: []float64{1, 0.5, 0.25},
			expected: [][]float64{
				{1, 0.5, 0.25},
				{0.5, 1, 0.5},
				{0.25, 0.5, 1},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := NewSymToeplitz(td.c)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			n := res.SymmetricDim()
			require.Equal(t, len(td.expected), n)
			for i := 0; i < n; i++ {
				assert.Equal(t, td.expected[i], mat.Row(nil, i, res))
			}
		})
	}
}
