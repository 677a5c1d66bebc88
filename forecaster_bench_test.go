package forecaster

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchPredictRes *Results

func BenchmarkTrainToModel(b *testing.B) {
	td := generateExampleSeries()

	var f *Forecaster
	var err error

	b.ResetTimer()
	for b.Loop() {
		f, err = New(nil)
		if err != nil {
			panic(err)
		}

		if err := f.Fit(td); err != nil {
			panic(err)
		}
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("benchmark_model.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkPredict(b *testing.B) {
	td := generateExampleSeries()
	f, err := New(nil)
	if err != nil {
		panic(err)
	}
	if err := f.Fit(td); err != nil {
		panic(err)
	}

	target := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchPredictRes, err = f.Predict(target)
		if err != nil {
			panic(err)
		}
	}
}
