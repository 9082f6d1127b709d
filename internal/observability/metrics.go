package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the fetch loop.
// Everything registers on a private registry so repeated construction (runs,
// tests) never trips duplicate-registration panics; the optional debug
// endpoint serves the same registry.
type Metrics struct {
	registry *prometheus.Registry

	// Fetches counts fetch attempts by bulletin kind and outcome
	// (success, not_found, transport_error, invalid_station).
	Fetches *prometheus.CounterVec

	// FetchDuration observes the wall time of each completed HTTP request.
	FetchDuration prometheus.Histogram

	// BytesStreamed counts bulletin body bytes written to standard output.
	BytesStreamed prometheus.Counter
}

// NewMetrics creates and registers all fetch metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metar",
			Name:      "fetches_total",
			Help:      "Bulletin fetch attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metar",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of individual bulletin HTTP requests.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		}),
		BytesStreamed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metar",
			Name:      "bytes_streamed_total",
			Help:      "Bulletin body bytes written to standard output.",
		}),
	}

	m.registry.MustRegister(
		m.Fetches,
		m.FetchDuration,
		m.BytesStreamed,
	)

	return m
}

// Registry exposes the backing registry for the debug /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
