package birdeye

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/metrics"
)

const operationFetchPrices = "fetch_prices"

// FetchPrices returns the price and liquidity of each requested token.
//
// The multi-price and listing requests run concurrently and both must succeed.
// Tokens the listing does not contain are returned with a null Liquidity; tokens
// without a price upstream are omitted. Keys are always a subset of addresses.
func (c *Client) FetchPrices(ctx context.Context, addresses []string) (prices map[string]PriceInfo, err error) {
	defer func() { metrics.RecordOperation(operationFetchPrices, outcomeOf(err)) }()

	requested, err := normalizeAddresses(addresses)
	if err != nil {
		return nil, err
	}

	// The first failure cancels the sibling request
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg         sync.WaitGroup
		priceData  multiPriceData
		listing    TokenListing
		priceErr   error
		listingErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if priceData, priceErr = c.fetchMultiPrice(fetchCtx, requested); priceErr != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		if listing, listingErr = c.fetchTokenList(fetchCtx); listingErr != nil {
			cancel()
		}
	}()
	wg.Wait()

	if err := firstFailure(ctx, priceErr, listingErr); err != nil {
		return nil, err
	}
	metrics.SetListingSize(len(listing))

	return joinPrices(requested, priceData, listing, c.logger), nil
}

// firstFailure picks the error that caused the fan-out to stop. An error caused only by
// cancelling the sibling is reported when nothing else failed.
func firstFailure(ctx context.Context, errs ...error) error {
	var cancelled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if ctx.Err() == nil && errors.Is(err, context.Canceled) {
			if cancelled == nil {
				cancelled = err
			}
			continue
		}
		return err
	}
	return cancelled
}

func joinPrices(requested []string, priceData multiPriceData, listing TokenListing, logger *zap.Logger) map[string]PriceInfo {
	index := listing.Index()
	result := make(map[string]PriceInfo, len(requested))

	for _, address := range requested {
		entry, ok := priceData[address]
		if !ok || entry == nil || !entry.Value.Valid {
			logger.Debug("no price returned for token", zap.String("address", address))
			continue
		}

		info := PriceInfo{
			Price:          entry.Value.Decimal,
			PriceChange24h: entry.PriceChange24h,
		}
		if token, listed := index[address]; listed {
			info.Liquidity = token.Liquidity
		} else {
			logger.Debug("token missing from listing, liquidity unknown", zap.String("address", address))
		}

		result[address] = info
	}

	return result
}
