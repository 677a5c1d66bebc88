package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateMonths returns n consecutive months beginning with the month containing start
func GenerateMonths(start time.Time, n int) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, AddMonths(start, i))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateTrendY produces a straight line with the given slope per month
func GenerateTrendY(n int, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, slope*float64(i))
	}
	return Series(y)
}

// GenerateYearlyWaveY produces a sine wave with a twelve month period and a phase offset in months
func GenerateYearlyWaveY(t []time.Time, amp, offsetMonths float64) Series {
	y := make([]float64, 0, len(t))
	for _, tPnt := range t {
		month := float64(tPnt.Month()-1) + offsetMonths
		y = append(y, amp*math.Sin(2.0*math.Pi*month/12.0))
	}
	return Series(y)
}

// GenerateARIMA111 simulates an ARIMA(1,1,1) process with gaussian innovations of the given
// scale. The seed makes the output reproducible.
func GenerateARIMA111(n int, phi, theta, scale float64, seed uint64) Series {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	y := make([]float64, n)
	var prevDiff, prevNoise float64
	for i := 1; i < n; i++ {
		noise := rng.NormFloat64() * scale
		diff := phi*prevDiff + noise + theta*prevNoise
		y[i] = y[i-1] + diff
		prevDiff, prevNoise = diff, noise
	}
	return Series(y)
}
