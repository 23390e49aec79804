package birdeye

import (
	"context"

	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/metrics"
)

const operationListTokens = "list_tokens_by_volume"

// ListTokensByVolume returns the token listing ordered by 24h USD volume, highest first
func (c *Client) ListTokensByVolume(ctx context.Context) (listing TokenListing, err error) {
	defer func() { metrics.RecordOperation(operationListTokens, outcomeOf(err)) }()

	listing, err = c.fetchTokenList(ctx)
	if err != nil {
		return nil, err
	}

	if !listing.IsSortedByVolume() {
		c.logger.Debug("upstream listing out of order, sorting", zap.Int("tokens", len(listing)))
		listing.SortByVolume()
	}
	metrics.SetListingSize(len(listing))

	return listing, nil
}
