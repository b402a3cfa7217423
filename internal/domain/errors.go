package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidResponse = errors.New("invalid response")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnsupportedFiat = errors.New("unsupported fiat")

	// ErrNoRate is returned when a conversion is requested before any price
	// has been cached for the asset.
	ErrNoRate = errors.New("there is no current rate, update prices")
)

// HTTPStatusError carries a non-success provider status code for diagnostics.
type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// NetworkError wraps a transport-level failure reaching the provider.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network failure: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }
