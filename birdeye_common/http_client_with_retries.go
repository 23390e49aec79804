package birdeye_common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/solana-price-feed/config"
	"github.com/status-im/solana-price-feed/metrics"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
//
//go:generate mockgen -destination=mocks/http_status_handler.go . IHttpStatusHandler
type IHttpStatusHandler interface {
	// OnRequest handles a finished attempt with its status result
	OnRequest(status string, duration time.Duration)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	MaxAttempts       int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:       1,
		BaseBackoff:       500 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// RetryOptionsFromConfig maps client configuration onto retry options
func RetryOptionsFromConfig(cfg config.BirdeyeConfig, logPrefix string) RetryOptions {
	opts := DefaultRetryOptions()
	opts.LogPrefix = logPrefix
	if cfg.MaxAttempts > 0 {
		opts.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BaseBackoff > 0 {
		opts.BaseBackoff = cfg.BaseBackoff
	}
	if cfg.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = cfg.ConnectionTimeout
	}
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}
	return opts
}

// HTTPStatusError is returned when the upstream answered with a non-200 status.
// It is never retried.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates an http.Client with bounded connection and request timeouts
func NewHTTPClient(opts RetryOptions) *http.Client {
	return &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
			TLSHandshakeTimeout: opts.ConnectionTimeout,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// HTTPClientWithRetries wraps an HTTP Client with retry capabilities.
// Only transport failures are retried: any HTTP response ends the loop.
type HTTPClientWithRetries struct {
	Client        *http.Client
	Opts          RetryOptions
	StatusHandler IHttpStatusHandler
	logger        *zap.Logger
}

// NewHTTPClientWithRetries creates a new HTTP Client with retry capabilities.
// A nil client gets one built from opts.
func NewHTTPClientWithRetries(client *http.Client, opts RetryOptions, handler IHttpStatusHandler, logger *zap.Logger) *HTTPClientWithRetries {
	if client == nil {
		client = NewHTTPClient(opts)
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPClientWithRetries{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		logger:        logger.With(zap.String("client", opts.LogPrefix)),
	}
}

// SetStatusHandler sets the status handler for this Client
func (c *HTTPClientWithRetries) SetStatusHandler(handler IHttpStatusHandler) {
	c.StatusHandler = handler
}

// ExecuteRequest executes an HTTP request with retry logic and returns the response body.
// Non-200 responses come back as *HTTPStatusError.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	ctx := req.Context()
	var lastErr error

	for attempt := 0; attempt < c.Opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			if c.StatusHandler != nil {
				c.StatusHandler.OnRetry()
			}

			backoffDuration := calculateBackoffWithJitter(c.Opts.BaseBackoff, attempt)
			c.logger.Warn("retrying request",
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", c.Opts.MaxAttempts),
				zap.Duration("backoff", backoffDuration),
				zap.Error(lastErr))

			if err := sleepContext(ctx, backoffDuration); err != nil {
				return nil, 0, fmt.Errorf("request cancelled while waiting to retry: %w", err)
			}
		}

		requestStart := time.Now()
		resp, err := c.Client.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			lastErr = fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
			c.onRequest(metrics.StatusError, requestDuration)
			if ctx.Err() != nil {
				return nil, requestDuration, lastErr
			}
			continue
		}

		body, err := processResponse(resp)
		if err != nil {
			status := metrics.StatusError
			var statusErr *HTTPStatusError
			if errors.As(err, &statusErr) {
				status = metrics.StatusUpstream
			}
			c.onRequest(status, requestDuration)
			return nil, requestDuration, err
		}

		c.onRequest(metrics.StatusSuccess, requestDuration)
		c.logger.Debug("request completed",
			zap.String("path", req.URL.Path),
			zap.Duration("duration", requestDuration),
			zap.Int("bytes", len(body)))
		return body, requestDuration, nil
	}

	return nil, 0, fmt.Errorf("all %d attempts failed, last error: %w", c.Opts.MaxAttempts, lastErr)
}

func (c *HTTPClientWithRetries) onRequest(status string, duration time.Duration) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status, duration)
	}
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseBackoff <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	if half := int64(backoff / 2); half > 0 {
		backoff += time.Duration(rand.Int63n(half))
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// processResponse reads the HTTP response and closes its body
func processResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyLength))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return responseBody, nil
}
