package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrConfig is returned for a missing or invalid startup setting
var ErrConfig = errors.New("configuration error")

// Credential holds the Birdeye API key
type Credential struct {
	APIKey string `envconfig:"BIRD_EYE_TOKEN" required:"true"`
}

// Option modifies credential loading
type Option func(*credentialOptions) error

type credentialOptions struct {
	envFiles []string
}

// WithEnvFile loads variables from a .env file before reading the environment.
// Variables already present in the environment win.
func WithEnvFile(path string) Option {
	return func(o *credentialOptions) error {
		if path == "" {
			return nil
		}
		o.envFiles = append(o.envFiles, path)
		return nil
	}
}

// LoadCredential reads the API key from the environment
func LoadCredential(opts ...Option) (Credential, error) {
	var o credentialOptions
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Credential{}, err
		}
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return Credential{}, fmt.Errorf("%w: failed to load env file: %v", ErrConfig, err)
		}
	}

	var cred Credential
	if err := envconfig.Process("", &cred); err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if err := cred.Validate(); err != nil {
		return Credential{}, err
	}

	return cred, nil
}

// Validate rejects an empty or blank key
func (c Credential) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: BIRD_EYE_TOKEN is empty", ErrConfig)
	}
	return nil
}

// String hides the key from logs
func (c Credential) String() string {
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return c.APIKey[:4] + "****"
}
