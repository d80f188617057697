package synapseadmin

import "context"

// User and room identifiers passed to these methods are opaque strings
// such as "@admin:localhost". They are not validated or escaped by this
// layer; the caller is responsible for well-formed IDs.

// QueryUser retrieves a user's account data via GET v2/users/{userID}.
// The decoded JSON body is returned as-is.
func (c *Client) QueryUser(ctx context.Context, userID string) (map[string]any, error) {
	user, err := c.apiClient.GetUser(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return user, nil
}

// DeactivateUser deactivates an account via POST v1/deactivate/{userID}.
// Use WithErase to also remove personal data.
func (c *Client) DeactivateUser(ctx context.Context, userID string, opts ...DeactivateOption) error {
	cfg := &deactivateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return wrapError(c.apiClient.DeactivateUser(ctx, userID, cfg.erase))
}

// ResetPassword changes a user's password via POST v1/reset_password/{userID}.
// By default all of the user's other sessions are logged out; use
// WithKeepDevices to keep them.
func (c *Client) ResetPassword(ctx context.Context, userID, newPassword string, opts ...ResetPasswordOption) error {
	cfg := &resetPasswordConfig{
		logoutDevices: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return wrapError(c.apiClient.ResetPassword(ctx, userID, newPassword, cfg.logoutDevices))
}

// IsUserAdmin reports whether a user is a server administrator via
// GET v1/users/{userID}/admin.
func (c *Client) IsUserAdmin(ctx context.Context, userID string) (bool, error) {
	admin, err := c.apiClient.GetUserAdmin(ctx, userID)
	if err != nil {
		return false, wrapError(err)
	}
	return admin, nil
}

// SetUserAdmin grants or revokes server administrator rights via
// PUT v1/users/{userID}/admin.
func (c *Client) SetUserAdmin(ctx context.Context, userID string, admin bool) error {
	return wrapError(c.apiClient.SetUserAdmin(ctx, userID, admin))
}
