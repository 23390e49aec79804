package cache

// ExistenceCache remembers token addresses the upstream API confirmed to exist.
// Only positive answers are stored: an address that exists on-chain keeps existing,
// while a missing one may be created later.
type ExistenceCache interface {
	// Known reports whether the address was previously confirmed to exist
	Known(address string) bool

	// Remember records a confirmed address
	Remember(address string)
}
