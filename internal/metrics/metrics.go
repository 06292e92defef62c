// Package metrics provides the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sorteos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sorteos_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Scraper metrics
	ScrapedDrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sorteos_scraped_draws_total",
			Help: "Draws saved from the upstream results API, per lottery",
		},
		[]string{"lottery"},
	)

	UpstreamRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sorteos_upstream_requests_total",
			Help: "Requests made to the upstream results API",
		},
	)

	// Feature pipeline metrics
	FeatureRebuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sorteos_feature_rebuild_duration_seconds",
			Help:    "Time taken to rebuild a lottery's feature datasets",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"lottery"},
	)

	// Number-history cache metrics
	HistoryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sorteos_number_history_cache_hits_total",
			Help: "Number-history cache hit count",
		},
	)

	HistoryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sorteos_number_history_cache_misses_total",
			Help: "Number-history cache miss count",
		},
	)
)
