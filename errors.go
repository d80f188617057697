package synapseadmin

import (
	"errors"
	"fmt"

	"github.com/synapseadmin/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrPayloadWithGet is returned when a payload is supplied with a GET
	// request. The request is rejected before any network activity.
	ErrPayloadWithGet = errors.New("payload not allowed with GET request")

	// ErrMissingNonce is returned when the registration nonce response
	// carries no nonce.
	ErrMissingNonce = errors.New("registration response is missing nonce")

	// ErrUnauthorized is returned when the access token is missing, invalid
	// or expired.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrForbidden is returned when the authenticated user is not a server
	// administrator.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned when the requested user or room does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the homeserver rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// SynapseAdminError is implemented by all SDK errors.
type SynapseAdminError interface {
	error
	SynapseAdminError() // marker method
}

// APIError represents an error-range HTTP response from the admin API.
// Only status codes in [300, 500) are mapped to APIError.
type APIError struct {
	StatusCode int
	Message    string
	// ErrCode is a machine-readable error code. It is reserved for future
	// protocol versions and is never populated by current logic.
	ErrCode string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("admin API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("admin API error %d", e.StatusCode)
}

// SynapseAdminError implements the SynapseAdminError interface.
func (e *APIError) SynapseAdminError() {}

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

// NetworkError represents a transport-level failure (DNS, connection, TLS,
// timeout). It is never raised for responses the server actually delivered.
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

// SynapseAdminError implements the SynapseAdminError interface.
func (e *NetworkError) SynapseAdminError() {}

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

// SynapseAdminError implements the SynapseAdminError interface.
func (e *ParseError) SynapseAdminError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() and errors.As() checks work with the
// public error types and sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, api.ErrPayloadWithGet):
		return ErrPayloadWithGet
	case errors.Is(err, api.ErrMissingNonce):
		return ErrMissingNonce
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			ErrCode:    apiErr.ErrCode,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var parseErr *api.ParseError
	if errors.As(err, &parseErr) {
		return &ParseError{
			What: parseErr.What,
			Err:  parseErr.Err,
		}
	}

	return err
}
