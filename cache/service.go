package cache

import (
	"context"

	"github.com/status-im/solana-price-feed/metrics"
	"github.com/status-im/solana-price-feed/scheduler"
)

// Service exposes the existence cache as a core service.
// A disabled cache never reports an address as known.
type Service struct {
	addresses *AddressSet
	config    Config
	reporter  *scheduler.Scheduler
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	s := &Service{config: config}
	if config.Enabled {
		s.addresses = NewAddressSet(config.TTL, config.CleanupInterval)
	}
	return s
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}

	// Expired entries leave the set without going through Remember, so the gauge
	// is refreshed on the cleanup cadence as well
	if s.addresses != nil && s.config.CleanupInterval > 0 {
		s.reporter = scheduler.New("existence-cache-size", s.config.CleanupInterval, s.reportSize)
		return s.reporter.Start(ctx)
	}
	return nil
}

func (s *Service) reportSize(context.Context) {
	metrics.SetExistenceCacheSize(s.addresses.Len())
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.reporter != nil {
		s.reporter.Stop()
	}
	if s.addresses != nil {
		s.addresses.Reset()
		metrics.SetExistenceCacheSize(0)
	}
}

// Known implements ExistenceCache
func (s *Service) Known(address string) bool {
	if s.addresses == nil {
		return false
	}
	return s.addresses.Known(address)
}

// Remember implements ExistenceCache
func (s *Service) Remember(address string) {
	if s.addresses == nil {
		return
	}
	s.addresses.Remember(address)
	metrics.SetExistenceCacheSize(s.addresses.Len())
}

// Size returns the number of cached addresses
func (s *Service) Size() int {
	if s.addresses == nil {
		return 0
	}
	return s.addresses.Len()
}
