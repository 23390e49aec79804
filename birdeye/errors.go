package birdeye

import (
	"context"
	"errors"
	"fmt"

	"github.com/status-im/solana-price-feed/config"
)

var (
	// ErrConfig is returned by NewClient for a missing credential or invalid settings
	ErrConfig = config.ErrConfig
	// ErrEmptyRequest is returned when no address was given; no request is sent
	ErrEmptyRequest = errors.New("empty request")
	// ErrInvalidAddress is returned for a malformed address or one the API reports as nonexistent
	ErrInvalidAddress = errors.New("invalid solana address")
	// ErrNotFound is returned when an existing address is absent from the token listing
	ErrNotFound = errors.New("token not found in listing")
	// ErrUpstream matches every *UpstreamError
	ErrUpstream = errors.New("upstream error")
)

// UpstreamError describes a failed call to one Birdeye endpoint.
// StatusCode is 0 when no HTTP response was received.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("birdeye %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("birdeye %s (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUpstream) hold for any UpstreamError
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// Operation outcomes used as metric labels
const (
	OutcomeOK             = "ok"
	OutcomeEmptyRequest   = "empty_request"
	OutcomeInvalidAddress = "invalid_address"
	OutcomeNotFound       = "not_found"
	OutcomeUpstream       = "upstream_error"
	OutcomeCancelled      = "cancelled"
	OutcomeError          = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrEmptyRequest):
		return OutcomeEmptyRequest
	case errors.Is(err, ErrInvalidAddress):
		return OutcomeInvalidAddress
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case errors.Is(err, ErrUpstream):
		return OutcomeUpstream
	default:
		return OutcomeError
	}
}
