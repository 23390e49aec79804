package birdeye

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/metrics"
)

const operationFetchTokenOverview = "fetch_token_overview"

// FetchTokenOverview checks that the address exists on-chain and returns its listing entry.
// A nonexistent address fails with ErrInvalidAddress without fetching the listing.
func (c *Client) FetchTokenOverview(ctx context.Context, address string) (overview TokenOverview, err error) {
	defer func() { metrics.RecordOperation(operationFetchTokenOverview, outcomeOf(err)) }()

	address = strings.TrimSpace(address)
	if address == "" {
		return TokenOverview{}, fmt.Errorf("%w: no token address provided", ErrEmptyRequest)
	}
	if err := ValidateAddress(address); err != nil {
		return TokenOverview{}, err
	}

	if err := c.ensureExists(ctx, address); err != nil {
		return TokenOverview{}, err
	}

	listing, err := c.fetchTokenList(ctx)
	if err != nil {
		return TokenOverview{}, err
	}
	metrics.SetListingSize(len(listing))

	token, ok := listing.Find(address)
	if !ok {
		return TokenOverview{}, fmt.Errorf("%w: %s", ErrNotFound, address)
	}

	token.Exists = true
	return token, nil
}

func (c *Client) ensureExists(ctx context.Context, address string) error {
	if c.existence != nil && c.existence.Known(address) {
		c.logger.Debug("address existence served from cache", zap.String("address", address))
		return nil
	}

	exists, err := c.fetchExists(ctx, address)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s does not exist on-chain", ErrInvalidAddress, address)
	}

	if c.existence != nil {
		c.existence.Remember(address)
	}
	return nil
}
