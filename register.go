package synapseadmin

import (
	"context"

	"github.com/synapseadmin/client-go/internal/api"
	"github.com/synapseadmin/client-go/internal/sharedsecret"
)

// RegisterUser registers a new user using the homeserver's registration
// shared secret. It performs the two-step nonce exchange: a GET to
// v1/register to obtain a one-time nonce, then a POST to v1/register with
// the registration fields and the HMAC-SHA1 credential computed over them.
//
// The returned map is the decoded response body as delivered by the
// server (user ID, access token and related fields); its shape is not
// enforced by this library.
func (c *Client) RegisterUser(ctx context.Context, sharedSecret, username, password string, opts ...RegisterOption) (map[string]any, error) {
	cfg := &registerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	nonce, err := c.apiClient.GetRegisterNonce(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	req := api.RegisterRequest{
		Nonce:       nonce,
		Username:    username,
		DisplayName: cfg.displayName,
		Password:    password,
		Admin:       cfg.admin,
		MAC:         sharedsecret.MAC(sharedSecret, nonce, username, password, cfg.admin),
	}

	user, err := c.apiClient.Register(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	return user, nil
}
