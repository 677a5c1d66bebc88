// Package metrics exposes prometheus instrumentation for forecast requests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exportcast"

// OutcomeSuccess labels forecasts that produced a value. Failures are labelled by error kind.
const OutcomeSuccess = "success"

// Metrics holds the collectors of a single registry. Each instance owns its registry so
// several servers can be built in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	forecasts       *prometheus.CounterVec
	fitDuration     prometheus.Histogram
	horizon         prometheus.Histogram
	observations    prometheus.Histogram
}

// New creates the collectors on a fresh registry along with the go runtime and process
// collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		forecasts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forecasts_total",
				Help:      "Forecast requests by outcome (success, input, validation, fit, unknown)",
			},
			[]string{"outcome"},
		),
		fitDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fit_duration_seconds",
				Help:      "Time spent fitting the model and forecasting",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
			},
		),
		horizon: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "forecast_horizon_months",
				Help:      "Months between the last observation and the requested month",
				Buckets:   []float64{1, 3, 6, 12, 24, 36, 60, 120},
			},
		),
		observations: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "training_observations",
				Help:      "Number of monthly observations per forecast request",
				Buckets:   []float64{12, 24, 48, 96, 192, 384},
			},
		),
	}
}

// ObserveRequest records a completed http request
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	m.requests.WithLabelValues(route, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveForecast records the outcome of a forecast request. Horizon and observations are
// recorded only for successful forecasts.
func (m *Metrics) ObserveForecast(outcome string, observations, horizon int, d time.Duration) {
	m.forecasts.WithLabelValues(outcome).Inc()
	if outcome != OutcomeSuccess {
		return
	}
	m.fitDuration.Observe(d.Seconds())
	m.horizon.Observe(float64(horizon))
	m.observations.Observe(float64(observations))
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
