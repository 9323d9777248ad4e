package route

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Search outcomes used as the "outcome" label.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var tracer = otel.Tracer("waypath.route")

var (
	// searchesTotal counts planned searches.
	// Labels: strategy, outcome (found, not_found, error)
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waypath",
		Subsystem: "search",
		Name:      "total",
		Help:      "Total route searches by strategy and outcome",
	}, []string{"strategy", "outcome"})

	// searchDuration measures wall time of a search, cost computation excluded.
	// Labels: strategy
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "waypath",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Route search latency in seconds",
		Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"strategy"})

	// nodesExpanded tracks how many nodes a search expanded.
	// Labels: strategy
	nodesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "waypath",
		Subsystem: "search",
		Name:      "nodes_expanded",
		Help:      "Nodes expanded per route search",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"strategy"})
)

// recordSearch updates all search metrics for one run.
func recordSearch(strategy Strategy, outcome string, elapsed time.Duration, expanded int) {
	name := strategy.String()
	searchesTotal.WithLabelValues(name, outcome).Inc()
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if outcome != outcomeError {
		nodesExpanded.WithLabelValues(name).Observe(float64(expanded))
	}
}
