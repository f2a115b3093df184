// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AnalysesTotal tracks completed event analyses by outcome.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total event analyses by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// AnalysisDuration tracks end-to-end analysis duration.
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end analysis duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider"},
	)

	// ModelRoundTrips tracks model round trips per analysis.
	ModelRoundTrips = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_round_trips",
			Help:    "Model round trips used per analysis",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
		},
	)

	// ToolCallsTotal tracks tool invocations by tool name and status.
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total tool invocations",
		},
		[]string{"tool", "status"},
	)

	// TruncationsTotal tracks analyses truncated to the length bound.
	TruncationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_truncations_total",
			Help: "Analyses truncated to the configured length bound",
		},
	)

	// PublishFailuresTotal tracks failed NATS publishes.
	PublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nats_publish_failures_total",
			Help: "Failed NATS publishes by subject",
		},
		[]string{"subject"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordAnalysis records metrics for a completed analysis.
func RecordAnalysis(provider, outcome string, duration float64, roundTrips int) {
	AnalysesTotal.WithLabelValues(provider, outcome).Inc()
	AnalysisDuration.WithLabelValues(provider).Observe(duration)
	ModelRoundTrips.Observe(float64(roundTrips))
}

// RecordToolCall records a single tool invocation.
func RecordToolCall(tool, status string) {
	ToolCallsTotal.WithLabelValues(tool, status).Inc()
}
