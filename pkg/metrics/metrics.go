// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts inbound requests by route template and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citypulse_http_requests_total",
			Help: "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citypulse_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequests counts calls to third-party APIs. Status is "error"
	// when no response was received.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citypulse_upstream_requests_total",
			Help: "Total number of requests sent to upstream APIs",
		},
		[]string{"provider", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citypulse_upstream_request_duration_seconds",
			Help:    "Upstream API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "citypulse_rate_limit_rejections_total",
			Help: "Requests rejected by the fixed-window rate limiter",
		},
	)

	EnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "citypulse_github_enrichment_failures_total",
			Help: "Per-user GitHub detail lookups that degraded to a partial record",
		},
	)
)

// RecordHTTPRequest observes a finished inbound request.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordUpstream observes a finished upstream call. A zero status records a
// transport failure.
func RecordUpstream(provider string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequests.WithLabelValues(provider, label).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
