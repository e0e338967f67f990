// Package metrics provides Prometheus metrics for the medinfo service:
// HTTP request counters/latency plus lookup instrumentation:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - medicine_lookup_total: Counter with source and outcome labels
//   - provider_model_fallback_total: Counter with model label
//   - conversation_turns_total: Counter with strategy label
//
// All metrics are registered with the Prometheus default registry during
// package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	MedicineLookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medicine_lookup_total",
			Help: "Medicine lookups by source (local, remote) and outcome (found, not_found, error)",
		},
		[]string{"source", "outcome"},
	)

	ProviderModelFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_model_fallback_total",
			Help: "Provider calls that failed and fell through to the next model",
		},
		[]string{"model"},
	)

	ConversationTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_turns_total",
			Help: "Conversation turns by routed strategy",
		},
		[]string{"strategy"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(MedicineLookupTotal)
	prometheus.MustRegister(ProviderModelFallbackTotal)
	prometheus.MustRegister(ConversationTurnsTotal)
}
