// Package metrics exposes Prometheus collectors for the lunch service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lunchRequestsTotal         *prometheus.CounterVec
	upstreamFetchDuration      prometheus.Histogram
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		lunchRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lunchbot_requests_total",
				Help: "Total number of lunch lookups, labeled by building and outcome.",
			},
			[]string{"building", "outcome"},
		)

		upstreamFetchDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lunchbot_upstream_fetch_duration_seconds",
				Help:    "Histogram of menu page fetch latencies.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLunchRequest increments the lunch lookup counter.
func ObserveLunchRequest(building, outcome string) {
	if lunchRequestsTotal == nil {
		return
	}
	lunchRequestsTotal.WithLabelValues(building, outcome).Inc()
}

// ObserveUpstreamFetch records one menu page fetch duration.
func ObserveUpstreamFetch(d time.Duration) {
	if upstreamFetchDuration == nil {
		return
	}
	upstreamFetchDuration.Observe(d.Seconds())
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if httpRequestsTotal == nil || httpRequestDurationSeconds == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}
