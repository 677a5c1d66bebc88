package arima

import (
	"testing"

	"github.com/aouyang1/go-exportcast/stats"
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongAROrder(t *testing.T) {
	testData := map[string]struct {
		n, p, q  int
		expected int
	}{
		"log squared":        {n: 600, p: 1, q: 1, expected: 40},
		"capped by sample":   {n: 47, p: 1, q: 1, expected: 14},
		"third of sample":    {n: 30, p: 1, q: 1, expected: 10},
		"tiny sample":        {n: 2, p: 1, q: 1, expected: 1},
		"twice largest term": {n: 12, p: 3, q: 0, expected: 4},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, longAROrder(td.n, td.p, td.q))
		})
	}
}

func TestHannanRissanen(t *testing.T) {
	phi, theta := 0.6, 0.3
	y := timedataset.GenerateARIMA111(600, phi, theta, 1.0, 42)
	w := stats.Diff(y, 1)

	ar, ma, err := hannanRissanen(w, 1, 1)
	require.Nil(t, err)
	require.Len(t, ar, 1)
	require.Len(t, ma, 1)
	assert.InDelta(t, phi, ar[0], 0.25)
	assert.InDelta(t, theta, ma[0], 0.25)
}

func TestHannanRissanenShortSample(t *testing.T) {
	_, _, err := hannanRissanen([]float64{1, -1, 2}, 1, 1)
	assert.NotNil(t, err)

	ar, ma := fallbackParams([]float64{1, -1, 2}, 1, 1)
	assert.Len(t, ar, 1)
	assert.Equal(t, []float64{initialMA}, ma)
}
