package synapseadmin

import (
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// clientConfig holds configuration for the client.
type clientConfig struct {
	accessToken string
	httpClient  *http.Client
	timeout     time.Duration
}

// registerConfig holds configuration for user registration.
type registerConfig struct {
	admin       bool
	displayName string
}

// deactivateConfig holds configuration for account deactivation.
type deactivateConfig struct {
	erase bool
}

// resetPasswordConfig holds configuration for password resets.
type resetPasswordConfig struct {
	logoutDevices bool
}

// Option configures the client.
type Option func(*clientConfig)

// RegisterOption configures user registration.
type RegisterOption func(*registerConfig)

// DeactivateOption configures account deactivation.
type DeactivateOption func(*deactivateConfig)

// ResetPasswordOption configures a password reset.
type ResetPasswordOption func(*resetPasswordConfig)

// WithAccessToken sets the admin bearer token. Without it the client can
// only issue unauthenticated calls until SetAccessToken is called.
func WithAccessToken(token string) Option {
	return func(c *clientConfig) {
		c.accessToken = token
	}
}

// WithHTTPClient sets a custom HTTP client. Transport concerns such as
// TLS configuration and timeouts belong to this client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout for the default HTTP client. It has
// no effect when a custom HTTP client is supplied.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithAdmin registers the user as a server administrator.
func WithAdmin() RegisterOption {
	return func(c *registerConfig) {
		c.admin = true
	}
}

// WithDisplayName sets the display name for the new user.
func WithDisplayName(name string) RegisterOption {
	return func(c *registerConfig) {
		c.displayName = name
	}
}

// WithErase requests removal of personal data along with deactivation.
func WithErase() DeactivateOption {
	return func(c *deactivateConfig) {
		c.erase = true
	}
}

// WithKeepDevices keeps the user's other sessions valid after a password
// reset. By default all devices are logged out.
func WithKeepDevices() ResetPasswordOption {
	return func(c *resetPasswordConfig) {
		c.logoutDevices = false
	}
}
