package core

import (
	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/api"
	"github.com/status-im/solana-price-feed/birdeye"
	"github.com/status-im/solana-price-feed/cache"
	"github.com/status-im/solana-price-feed/config"
)

// NewPriceFeed builds the Birdeye client backed by the existence cache service
func NewPriceFeed(cfg *config.Config, credential config.Credential, cacheService *cache.Service, logger *zap.Logger) (*birdeye.Client, error) {
	return birdeye.NewClient(cfg.Birdeye, credential,
		birdeye.WithLogger(logger.Named("birdeye")),
		birdeye.WithExistenceCache(cacheService),
	)
}

// Setup creates and registers all services
func Setup(cfg *config.Config, credential config.Credential, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := NewRegistry(logger.Named("registry"))

	cacheService := cache.NewService(cfg.Cache)
	registry.Register("cache", cacheService)

	priceFeed, err := NewPriceFeed(cfg, credential, cacheService, logger)
	if err != nil {
		return nil, err
	}

	server := api.New(cfg.API.Port, priceFeed, logger.Named("api"))
	registry.Register("api", server)

	return registry, nil
}
