package cache

import (
	"fmt"
	"time"
)

// Config configures the existence cache
type Config struct {
	Enabled bool `yaml:"enabled"`

	// TTL bounds how long a confirmed address is trusted, 0 keeps it forever
	TTL time.Duration `yaml:"ttl"`

	// CleanupInterval is the go-cache janitor period and the size report period,
	// 0 disables both
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		Enabled:         true,
		TTL:             24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// Validate rejects negative durations
func (c Config) Validate() error {
	if c.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.TTL)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("cache cleanup_interval must not be negative, got %s", c.CleanupInterval)
	}
	return nil
}
