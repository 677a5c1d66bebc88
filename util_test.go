package forecaster

import (
	"testing"
	"time"

	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartData(t *testing.T) {
	start := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	td, err := timedataset.NewMonthlyDataset(timedataset.GenerateMonths(start, 3), []float64{10, 20, 30})
	require.Nil(t, err)

	testData := map[string]struct {
		res              *Results
		expectedX        []string
		expectedActual   []opts.LineData
		expectedForecast []opts.LineData
	}{
		"history only": {
			expectedX: []string{"2023-10", "2023-11", "2023-12"},
			expectedActual: []opts.LineData{
				{Value: 10.0}, {Value: 20.0}, {Value: 30.0},
			},
			expectedForecast: []opts.LineData{
				{Value: emptyPoint}, {Value: emptyPoint}, {Value: emptyPoint},
			},
		},
		"two month forecast": {
			res: &Results{
				Horizon:  2,
				Forecast: 42,
				Axis:     timedataset.GenerateMonths(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2),
			},
			expectedX: []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02"},
			expectedActual: []opts.LineData{
				{Value: 10.0}, {Value: 20.0}, {Value: 30.0}, {Value: emptyPoint}, {Value: emptyPoint},
			},
			expectedForecast: []opts.LineData{
				{Value: emptyPoint}, {Value: emptyPoint}, {Value: emptyPoint}, {Value: 42.0}, {Value: 42.0},
			},
		},
	}

	for name, tc := range testData {
		t.Run(name, func(t *testing.T) {
			x, actual, forecast := chartData(td, tc.res)
			assert.Equal(t, tc.expectedX, x)
			assert.Equal(t, tc.expectedActual, actual)
			assert.Equal(t, tc.expectedForecast, forecast)
		})
	}
}

func TestLineForecast(t *testing.T) {
	start := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	td, err := timedataset.NewMonthlyDataset(timedataset.GenerateMonths(start, 3), []float64{10, 20, 30})
	require.Nil(t, err)

	line := LineForecast(td, nil)
	assert.Len(t, line.MultiSeries, 1)

	res := &Results{
		Target:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Horizon:  1,
		Forecast: 35,
		Axis:     []time.Time{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	line = LineForecast(td, res)
	require.Len(t, line.MultiSeries, 2)
	assert.Equal(t, actualSeries, line.MultiSeries[0].Name)
	assert.Equal(t, forecastSeries, line.MultiSeries[1].Name)
}
