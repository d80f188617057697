package api

import (
	"context"
	"fmt"
	"net/http"
)

// User and room identifiers are opaque strings (e.g. "@admin:localhost",
// "!room:localhost") interpolated into paths as-is. This layer does not
// validate or escape them; callers are responsible for well-formed IDs.

// GetRegisterNonce fetches the one-time nonce required for shared-secret
// registration. A response without a nonce is a protocol error.
func (c *Client) GetRegisterNonce(ctx context.Context) (string, error) {
	var result NonceResponse
	if err := c.Do(ctx, http.MethodGet, "v1/register", nil, &result); err != nil {
		return "", err
	}
	if result.Nonce == "" {
		return "", ErrMissingNonce
	}
	return result.Nonce, nil
}

// Register submits a shared-secret registration. The request must carry
// the nonce from GetRegisterNonce and the MAC computed over it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.Do(ctx, http.MethodPost, "v1/register", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUser retrieves a user's account data.
func (c *Client) GetUser(ctx context.Context, userID string) (map[string]any, error) {
	var result map[string]any
	path := fmt.Sprintf("v2/users/%s", userID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetRoomMembers lists the members of a room. The response shape (member
// IDs plus a total count) is not enforced here.
func (c *Client) GetRoomMembers(ctx context.Context, roomID string) (map[string]any, error) {
	var result map[string]any
	path := fmt.Sprintf("v1/rooms/%s/members", roomID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// JoinRoom joins a local user to a room. The response body is discarded.
func (c *Client) JoinRoom(ctx context.Context, roomID, userID string) error {
	path := fmt.Sprintf("v1/join/%s", roomID)
	return c.Do(ctx, http.MethodPost, path, joinRoomRequest{UserID: userID}, nil)
}

// GetServerVersion retrieves the homeserver version.
func (c *Client) GetServerVersion(ctx context.Context) (*ServerVersion, error) {
	var result ServerVersion
	if err := c.Do(ctx, http.MethodGet, "v1/server_version", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeactivateUser deactivates an account. When erase is true the server
// also removes personal data from the account.
func (c *Client) DeactivateUser(ctx context.Context, userID string, erase bool) error {
	path := fmt.Sprintf("v1/deactivate/%s", userID)
	return c.Do(ctx, http.MethodPost, path, deactivateRequest{Erase: erase}, nil)
}

// ResetPassword changes a user's password. When logoutDevices is true the
// server invalidates the user's other sessions.
func (c *Client) ResetPassword(ctx context.Context, userID, newPassword string, logoutDevices bool) error {
	path := fmt.Sprintf("v1/reset_password/%s", userID)
	req := resetPasswordRequest{
		NewPassword:   newPassword,
		LogoutDevices: logoutDevices,
	}
	return c.Do(ctx, http.MethodPost, path, req, nil)
}

// GetUserAdmin reports whether a user is a server administrator.
func (c *Client) GetUserAdmin(ctx context.Context, userID string) (bool, error) {
	var result adminStatus
	path := fmt.Sprintf("v1/users/%s/admin", userID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return false, err
	}
	return result.Admin, nil
}

// SetUserAdmin grants or revokes server administrator rights.
func (c *Client) SetUserAdmin(ctx context.Context, userID string, admin bool) error {
	path := fmt.Sprintf("v1/users/%s/admin", userID)
	return c.Do(ctx, http.MethodPut, path, adminStatus{Admin: admin}, nil)
}
