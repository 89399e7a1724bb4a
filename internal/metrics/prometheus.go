// Package metrics provides Prometheus metrics for the dashboard backend
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Mock service metrics
	ServiceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scm_service_calls_total",
			Help: "Total number of mock service calls",
		},
		[]string{"resource", "operation", "outcome"},
	)

	ServiceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scm_service_call_duration_seconds",
			Help:    "Duration of mock service calls including simulated latency",
			Buckets: []float64{0.001, 0.01, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"resource", "operation"},
	)

	StoreSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scm_store_records",
			Help: "Number of records held per resource after the last mutation",
		},
		[]string{"resource"},
	)

	// Fault injection metrics
	SimulatedLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scm_simulated_latency_seconds",
			Help:    "Artificial latency applied to mock service calls",
			Buckets: []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 1, 2},
		},
		[]string{"resource", "operation"},
	)

	FaultsInjected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scm_faults_injected_total",
			Help: "Total number of injected faults",
		},
		[]string{"resource", "operation", "type"},
	)

	// Notification metrics
	NotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scm_notifications_total",
			Help: "User-facing notifications emitted",
		},
		[]string{"resource", "level"},
	)

	// Insight metrics
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scm_insight_requests_total",
			Help: "Insight generation requests",
		},
		[]string{"kind", "provider", "outcome"},
	)

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scm_http_requests_total",
			Help: "HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveCall records the outcome and duration of a service call.
func ObserveCall(resource, operation, outcome string, started time.Time) {
	ServiceCalls.WithLabelValues(resource, operation, outcome).Inc()
	ServiceDuration.WithLabelValues(resource, operation).Observe(time.Since(started).Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
