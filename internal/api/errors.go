package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrPayloadWithGet indicates a payload was supplied with a GET request.
	ErrPayloadWithGet = errors.New("payload not allowed with GET request")
	// ErrMissingNonce indicates the registration nonce response carried no nonce.
	ErrMissingNonce = errors.New("registration response is missing nonce")
	// ErrUnauthorized indicates the access token is missing, invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired access token")
	// ErrForbidden indicates the authenticated user lacks admin rights.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the homeserver rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an error-range HTTP response from the admin API.
// Only status codes in [300, 500) are mapped to APIError; 5xx responses
// are intentionally passed through as ordinary results.
type APIError struct {
	StatusCode int
	Message    string
	// ErrCode is a machine-readable error code. It is reserved for future
	// protocol versions and is never populated by current logic; keep it
	// empty rather than inventing values.
	ErrCode string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("admin API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("admin API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure. It is never raised
// for responses the server actually delivered.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError represents a response body that could not be decoded as JSON.
type ParseError struct {
	// What identifies the request whose response failed to decode.
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response for %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
