package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "price_feed_"

// Request status labels
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusUpstream = "upstream_error"
)

var (
	// Birdeye request counter per endpoint
	// Cardinality: ~9 (3 endpoints × 3 statuses)
	BirdeyeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "birdeye_requests_total",
			Help: "Total number of HTTP requests to the Birdeye API per endpoint",
		},
		[]string{"endpoint", "status"},
	)

	// Request latency per endpoint
	// Cardinality: ~3 (number of endpoints)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricsPrefix + "request_latency_seconds",
			Help:    "Birdeye HTTP request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Retry attempts counter
	// Cardinality: ~3 (number of endpoints)
	RetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retry_attempts_total",
			Help: "Total number of retry attempts after transport failures",
		},
		[]string{"endpoint"},
	)

	// Client operation outcomes
	// Cardinality: ~15 (3 operations × 5 outcomes)
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "operations_total",
			Help: "Total number of price feed client operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// ListingSizeGauge tracks the number of tokens in the last fetched listing
	ListingSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "listing_size",
			Help: "Number of tokens in the last fetched token listing",
		},
	)

	// ExistenceCacheSizeGauge tracks the number of confirmed addresses in cache
	ExistenceCacheSizeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "existence_cache_size",
			Help: "Number of token addresses confirmed to exist and cached",
		},
	)
)

// RecordOperation records the outcome of a client operation
func RecordOperation(operation, outcome string) {
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetListingSize records the size of the last fetched listing
func SetListingSize(size int) {
	ListingSizeGauge.Set(float64(size))
}

// SetExistenceCacheSize records the number of cached addresses
func SetExistenceCacheSize(size int) {
	ExistenceCacheSizeGauge.Set(float64(size))
}
