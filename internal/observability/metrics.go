// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Lookup metrics
	LookupsTotal   *prometheus.CounterVec
	LookupDuration prometheus.Histogram

	// History metrics
	HistoryRequestsTotal prometheus.Counter
	HistoryErrorsTotal   prometheus.Counter

	// Persistence metrics
	LookupWritesSwallowed prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "tron_address_service"
	}

	return &Metrics{
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "requests_total",
			Help:      "Total number of address lookups by outcome",
		}, []string{"status"}),
		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "duration_seconds",
			Help:      "Address lookup duration in seconds, node calls included",
			Buckets:   prometheus.DefBuckets,
		}),

		HistoryRequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "requests_total",
			Help:      "Total number of history page reads",
		}),
		HistoryErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "errors_total",
			Help:      "Total number of failed history page reads",
		}),

		LookupWritesSwallowed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "lookup_writes_swallowed_total",
			Help:      "Total number of lookup log writes that failed and were swallowed",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// Lookup outcome labels.
const (
	LookupStatusOK             = "success"
	LookupStatusInvalidFormat  = "invalid_format"
	LookupStatusInvalidAddress = "invalid_address"
	LookupStatusUpstreamError  = "upstream_error"
)

// RecordLookup records one lookup request with its outcome and duration.
func RecordLookup(status string, seconds float64) {
	DefaultMetrics.LookupsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.LookupDuration.Observe(seconds)
}

// RecordHistoryRequest increments the history reads counter.
func RecordHistoryRequest() {
	DefaultMetrics.HistoryRequestsTotal.Inc()
}

// RecordHistoryError increments the history errors counter.
func RecordHistoryError() {
	DefaultMetrics.HistoryErrorsTotal.Inc()
}

// RecordLookupWriteSwallowed increments the swallowed-write counter.
func RecordLookupWriteSwallowed() {
	DefaultMetrics.LookupWritesSwallowed.Inc()
}
