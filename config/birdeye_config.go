package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultBirdeyeBaseURL is the public Birdeye API host
	DefaultBirdeyeBaseURL = "https://public-api.birdeye.so"
	// DefaultChain is sent in the x-chain header
	DefaultChain = "solana"
)

// BirdeyeConfig represents configuration for the Birdeye price feed client
type BirdeyeConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Chain             string        `yaml:"chain"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`    // Total request timeout including reading response
	ConnectionTimeout time.Duration `yaml:"connection_timeout"` // Timeout for establishing connection
	MaxAttempts       int           `yaml:"max_attempts"`       // Attempts on transport failures, 1 disables retries
	BaseBackoff       time.Duration `yaml:"base_backoff"`
}

// DefaultBirdeyeConfig returns default client settings
func DefaultBirdeyeConfig() BirdeyeConfig {
	return BirdeyeConfig{
		BaseURL:           DefaultBirdeyeBaseURL,
		Chain:             DefaultChain,
		RequestTimeout:    10 * time.Second,
		ConnectionTimeout: 5 * time.Second,
		MaxAttempts:       1,
		BaseBackoff:       500 * time.Millisecond,
	}
}

// Validate checks the settings that cannot be defaulted at request time
func (c BirdeyeConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: birdeye base_url is empty", ErrConfig)
	}
	u, err := url.ParseRequestURI(c.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: invalid birdeye base_url %q", ErrConfig, c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: birdeye request_timeout must be positive", ErrConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: birdeye max_attempts must be at least 1", ErrConfig)
	}
	return nil
}
