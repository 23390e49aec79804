package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/status-im/solana-price-feed/core"
)

const testAPIKey = "e2e-test-key"

// TestEnv represents a test environment
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	Context       context.Context
	CancelFunc    context.CancelFunc
	ServerBaseURL string
}

// SetupTest sets up the test environment
func SetupTest(t *testing.T) *TestEnv {
	t.Helper()

	// Pin the key so an ambient BIRD_EYE_TOKEN cannot leak into the run
	t.Setenv("BIRD_EYE_TOKEN", testAPIKey)

	// Create a context with cancellation capability
	ctx, cancel := context.WithCancel(context.Background())

	// Create a mock server
	mockServer := NewMockServer(testAPIKey)

	port, err := freePort()
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to pick a port: %v", err)
	}

	// Load test configuration with URLs from the mock server
	cfg, credential, err := loadTestConfig(t.TempDir(), mockServer.GetURL(), port, testAPIKey)
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	// Initialize services
	registry, err := core.Setup(cfg, credential, zaptest.NewLogger(t))
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	// Start services
	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	serverBaseURL := fmt.Sprintf("http://127.0.0.1:%s", port)

	// The listener is bound when StartAll returns, poll briefly for Serve to pick it up
	var resp *http.Response
	for i := 0; i < 20; i++ {
		resp, err = http.Get(serverBaseURL + "/health")
		if err == nil {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}
	if err != nil || resp.StatusCode != http.StatusOK {
		registry.StopAll()
		mockServer.Close()
		cancel()
		if err != nil {
			t.Fatalf("Server not responding: %v", err)
		} else {
			t.Fatalf("Server returned unexpected status: %d", resp.StatusCode)
		}
	}
	resp.Body.Close()

	env := &TestEnv{
		Registry:      registry,
		MockServer:    mockServer,
		Context:       ctx,
		CancelFunc:    cancel,
		ServerBaseURL: serverBaseURL,
	}
	t.Cleanup(env.TearDown)
	return env
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
		env.Registry = nil
	}
	if env.MockServer != nil {
		env.MockServer.Close()
		env.MockServer = nil
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
}
