package interfaces

import (
	"context"

	"github.com/status-im/solana-price-feed/birdeye"
)

//go:generate mockgen -destination=mocks/price_feed.go . PriceFeed

// PriceFeed is the token price source served by the API
type PriceFeed interface {
	// FetchPrices returns price and liquidity per requested token address
	FetchPrices(ctx context.Context, addresses []string) (map[string]birdeye.PriceInfo, error)

	// FetchTokenOverview returns the listing entry of an address confirmed to exist
	FetchTokenOverview(ctx context.Context, address string) (birdeye.TokenOverview, error)

	// ListTokensByVolume returns all listed tokens by 24h USD volume, highest first
	ListTokensByVolume(ctx context.Context) (birdeye.TokenListing, error)
}
