package birdeye_common

import (
	"github.com/status-im/solana-price-feed/metrics"
)

// NewEndpointStatusHandler returns a status handler writing Prometheus metrics for the endpoint
func NewEndpointStatusHandler(endpoint string) IHttpStatusHandler {
	return metrics.NewMetricsWriter(endpoint)
}
