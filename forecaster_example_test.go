package forecaster

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aouyang1/go-exportcast/timedataset"
)

func generateExampleSeries() *timedataset.TimeDataset {
	// six years of monthly totals with a slow trend and a yearly harvest cycle
	n := 72
	t := timedataset.GenerateMonths(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), n)
	y := timedataset.GenerateConstY(n, 850_000).
		Add(timedataset.GenerateTrendY(n, 1_500)).
		Add(timedataset.GenerateYearlyWaveY(t, 80_000, 3)).
		Add(timedataset.GenerateARIMA111(n, 0.4, 0.2, 15_000, 11))

	td, err := timedataset.NewMonthlyDataset(t, y)
	if err != nil {
		panic(err)
	}
	return td
}

func recoverForecastPanic() {
	if r := recover(); r != nil {
		fmt.Printf("panic: %v\n", r)
		debug.PrintStack()
	}
}

func Example_forecaster() {
	td := generateExampleSeries()

	defer recoverForecastPanic()

	res, f, err := Run(td, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("last month: %s\n", res.LastMonth.Format(timedataset.MonthLayout))
	fmt.Printf("horizon: %d\n", res.Horizon)
	fmt.Printf("axis: %s to %s\n",
		res.Axis[0].Format(timedataset.MonthLayout),
		res.Axis[len(res.Axis)-1].Format(timedataset.MonthLayout),
	)

	file, err := os.Create(filepath.Join(os.TempDir(), "exportcast_forecast.html"))
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := f.PlotForecast(file, res); err != nil {
		panic(err)
	}
	// Output:
	// last month: 2023-12
	// horizon: 6
	// axis: 2024-01 to 2024-06
}

func Example_forecasterDateInData() {
	td := generateExampleSeries()

	_, _, err := Run(td, time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC), nil)
	fmt.Println(Kind(err))
	// Output:
	// validation
}
