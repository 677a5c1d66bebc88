package forecaster

import (
	"github.com/aouyang1/go-exportcast/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartTitle     = "Coffee Export Forecast"
	actualSeries   = "Total Exports"
	forecastSeries = "Forecast"
	forecastColor  = "orange"
	emptyPoint     = "-"
)

// chartData lines up the observed months and the forecast axis on a single month labelled x
// axis. The observed series is blank over the forecast months and the forecast series holds
// the forecast value at every axis month and is blank elsewhere.
func chartData(td *timedataset.TimeDataset, res *Results) ([]string, []opts.LineData, []opts.LineData) {
	n := td.Len()
	var axis []string
	var fill float64
	if res != nil {
		for _, t := range res.Axis {
			axis = append(axis, t.Format(timedataset.MonthLayout))
		}
		fill = res.Forecast
	}

	x := make([]string, 0, n+len(axis))
	actual := make([]opts.LineData, 0, n+len(axis))
	forecast := make([]opts.LineData, 0, n+len(axis))
	for i := 0; i < n; i++ {
		x = append(x, td.T[i].Format(timedataset.MonthLayout))
		actual = append(actual, opts.LineData{Value: td.Y[i]})
		forecast = append(forecast, opts.LineData{Value: emptyPoint})
	}
	for _, label := range axis {
		x = append(x, label)
		actual = append(actual, opts.LineData{Value: emptyPoint})
		forecast = append(forecast, opts.LineData{Value: fill})
	}
	return x, actual, forecast
}

// LineForecast generates an echart line chart of the observed series and the forecast over
// the forecast axis, with a vertical marker at the last observed month. A nil res charts the
// observed series only.
func LineForecast(td *timedataset.TimeDataset, res *Results) *charts.Line {
	subtitle := ""
	if res != nil {
		subtitle = res.Message()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    chartTitle,
				Subtitle: subtitle,
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)

	x, actual, forecast := chartData(td, res)
	line.SetXAxis(x).
		AddSeries(actualSeries, actual,
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  "Last observed month",
				XAxis: td.LastMonth().Format(timedataset.MonthLayout),
			}),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				LineStyle: &opts.LineStyle{Type: "dashed", Color: "red"},
			}),
		)
	if res != nil {
		line.AddSeries(forecastSeries, forecast,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Color: forecastColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: forecastColor}),
		)
	}
	return line
}
