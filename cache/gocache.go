package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AddressSet is an in-memory ExistenceCache backed by go-cache.
// Each entry holds the time the address was confirmed.
type AddressSet struct {
	items *cache.Cache
	now   func() time.Time
}

// NewAddressSet creates an AddressSet whose entries live for ttl; 0 means forever
func NewAddressSet(ttl, cleanupInterval time.Duration) *AddressSet {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &AddressSet{
		items: cache.New(ttl, cleanupInterval),
		now:   time.Now,
	}
}

// Known reports whether the address is present and not expired
func (s *AddressSet) Known(address string) bool {
	_, found := s.items.Get(address)
	return found
}

// Remember records the address as confirmed now, refreshing its TTL
func (s *AddressSet) Remember(address string) {
	s.items.SetDefault(address, s.now())
}

// ConfirmedAt returns when the address was last confirmed
func (s *AddressSet) ConfirmedAt(address string) (time.Time, bool) {
	v, found := s.items.Get(address)
	if !found {
		return time.Time{}, false
	}
	confirmed, ok := v.(time.Time)
	return confirmed, ok
}

// Forget drops one address
func (s *AddressSet) Forget(address string) {
	s.items.Delete(address)
}

// Reset drops every address
func (s *AddressSet) Reset() {
	s.items.Flush()
}

// Len counts stored addresses, expired ones included until the janitor or Prune runs
func (s *AddressSet) Len() int {
	return s.items.ItemCount()
}

// Prune removes expired addresses immediately
func (s *AddressSet) Prune() {
	s.items.DeleteExpired()
}
