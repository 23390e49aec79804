package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/status-im/solana-price-feed/cache"
)

type Config struct {
	Birdeye  BirdeyeConfig `yaml:"birdeye"`
	Cache    cache.Config  `yaml:"cache"`
	API      APIConfig     `yaml:"api"`
	LogLevel string        `yaml:"log_level"`
	EnvFile  string        `yaml:"env_file"`
}

// APIConfig configures the HTTP proxy server
type APIConfig struct {
	Port string `yaml:"port"`
}

// DefaultConfig returns a configuration usable without a config file
func DefaultConfig() *Config {
	return &Config{
		Birdeye:  DefaultBirdeyeConfig(),
		Cache:    cache.DefaultCacheConfig(),
		API:      APIConfig{Port: "8080"},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	if err := config.Birdeye.Validate(); err != nil {
		return nil, err
	}
	if err := config.Cache.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return config, nil
}
