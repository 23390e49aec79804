package metrics

import "time"

// MetricsWriter records request metrics for a single upstream endpoint
type MetricsWriter struct {
	endpoint string
}

// NewMetricsWriter creates a new MetricsWriter for the specified endpoint
func NewMetricsWriter(endpoint string) *MetricsWriter {
	return &MetricsWriter{
		endpoint: endpoint,
	}
}

// GetEndpoint returns the endpoint name
func (mw *MetricsWriter) GetEndpoint() string {
	return mw.endpoint
}

// OnRequest records an HTTP request with its status and duration
func (mw *MetricsWriter) OnRequest(status string, duration time.Duration) {
	BirdeyeRequestsTotal.WithLabelValues(mw.endpoint, status).Inc()
	RequestLatencyHistogram.WithLabelValues(mw.endpoint).Observe(duration.Seconds())
}

// OnRetry records a retry attempt
func (mw *MetricsWriter) OnRetry() {
	RetryCounter.WithLabelValues(mw.endpoint).Inc()
}
