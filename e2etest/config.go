package e2etest

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/status-im/solana-price-feed/config"
)

// createTestConfig writes a config file pointing the client at the mock server
func createTestConfig(dir, mockURL, port string) (string, error) {
	configContent := fmt.Sprintf(`
log_level: debug
birdeye:
  base_url: %q
  request_timeout: 2s      # short timeout for tests
  connection_timeout: 1s
  max_attempts: 1
cache:
  enabled: true
  ttl: 1m
  cleanup_interval: 5m
api:
  port: %q
`, mockURL, port)

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return "", err
	}
	return configPath, nil
}

// createTestEnvFile writes a .env file holding the API key
func createTestEnvFile(dir, apiKey string) (string, error) {
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("BIRD_EYE_TOKEN="+apiKey+"\n"), 0o600); err != nil {
		return "", err
	}
	return envPath, nil
}

// loadTestConfig creates and loads the test configuration and credential
func loadTestConfig(dir, mockURL, port, apiKey string) (*config.Config, config.Credential, error) {
	configPath, err := createTestConfig(dir, mockURL, port)
	if err != nil {
		return nil, config.Credential{}, err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, config.Credential{}, err
	}

	envPath, err := createTestEnvFile(dir, apiKey)
	if err != nil {
		return nil, config.Credential{}, err
	}

	credential, err := config.LoadCredential(config.WithEnvFile(envPath))
	if err != nil {
		return nil, config.Credential{}, err
	}

	return cfg, credential, nil
}

// freePort asks the kernel for an unused TCP port
func freePort() (string, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	return port, err
}
