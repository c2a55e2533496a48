package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for yield table
// lookups.
type Metrics struct {
	Lookups      *prometheus.CounterVec // labels: op={list_meta,get_meta,get_table,get_interpolated}, outcome={success,not_found,error}
	RowsParsed   prometheus.Counter
	LoadDuration prometheus.Histogram
}

// NewMetrics creates and registers all lookup metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yield_tables",
			Name:      "lookups_total",
			Help:      "Lookup operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "yield_tables",
			Name:      "rows_parsed_total",
			Help:      "Total data rows parsed from the table source.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "yield_tables",
			Name:      "load_duration_seconds",
			Help:      "Duration of a full source read, parse, and assemble cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
	}

	prometheus.MustRegister(
		m.Lookups,
		m.RowsParsed,
		m.LoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Lookups:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "yield_tables", Name: "lookups_total"}, []string{"op", "outcome"}),
		RowsParsed:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "yield_tables", Name: "rows_parsed_total"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "yield_tables", Name: "load_duration_seconds"}),
	}
}
