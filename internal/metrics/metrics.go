package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listy_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "listy_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	claimTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listy_claim_transitions_total",
		Help: "Count of item claim transitions by kind and result",
	}, []string{"kind", "result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveClaim counts a claim or release attempt. kind is "claim" or
// "release"; result is "ok", "race", "conflict" or "denied".
func ObserveClaim(kind, result string) {
	claimTransitions.WithLabelValues(kind, result).Inc()
}
