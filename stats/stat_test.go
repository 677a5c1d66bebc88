package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		d        int
		expected []float64
	}{
		"no differencing": {
			y:        []float64{1, 4, 9},
			d:        0,
			expected: []float64{1, 4, 9},
		},
		"first difference": {
			y:        []float64{1, 4, 9, 16},
			d:        1,
			expected: []float64{3, 5, 7},
		},
		"second difference": {
			y:        []float64{1, 4, 9, 16},
			d:        2,
			expected: []float64{2, 2},
		},
		"differenced away": {
			y:        []float64{1},
			d:        1,
			expected: []float64{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Diff(td.y, td.d))
		})
	}
}

func TestACF(t *testing.T) {
	acf, err := ACF([]float64{1, 2, 3, 4}, 2)
	require.Nil(t, err)
	// centered: -1.5 -0.5 0.5 1.5, c0 = 5
	assert.InDeltaSlice(t, []float64{1, 1.25 / 5, -1.5 / 5}, acf, 1e-12)

	acf, err = ACF([]float64{2, 2, 2}, 1)
	require.Nil(t, err)
	assert.Equal(t, []float64{0, 0}, acf)

	_, err = ACF([]float64{1, 2}, 2)
	assert.ErrorIs(t, err, ErrInsufficientSample)

	_, err = ACF([]float64{1, 2}, -1)
	assert.ErrorIs(t, err, ErrNegativeOrder)
}

func TestYuleWalker(t *testing.T) {
	testData := map[string]struct {
		acf      []float64
		order    int
		expected []float64
		err      error
	}{
		"order zero": {
			acf:      []float64{1, 0.5},
			order:    0,
			expected: []float64{},
		},
		"ar1": {
			acf:      []float64{1, 0.6},
			order:    1,
			expected: []float64{0.6},
		},
		"ar2": {
			// phi1 = 0.5, phi2 = 0.2 gives rho1 = 0.625, rho2 = 0.5125
			acf:      []float64{1, 0.625, 0.5125},
			order:    2,
			expected: []float64{0.5, 0.2},
		},
		"too short": {
			acf:   []float64{1},
			order: 1,
			err:   ErrInsufficientSample,
		},
		"singular": {
			acf:   []float64{1, 1, 1},
			order: 2,
			err:   ErrSingularACF,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			phi, err := YuleWalker(td.acf, td.order)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDeltaSlice(t, td.expected, phi, 1e-9)
		})
	}
}
