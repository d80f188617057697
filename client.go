package synapseadmin

import (
	"context"

	"github.com/synapseadmin/client-go/internal/api"
)

// Response is a raw admin API response.
type Response = api.Response

// Client is the Synapse admin API client.
type Client struct {
	apiClient *api.Client
}

// New creates a new admin API client for the homeserver at baseURL.
//
// The access token is optional at construction: without it the client can
// only issue unauthenticated calls (such as fetching the server version or
// registering users with the shared secret) until SetAccessToken is called.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	cfg := &clientConfig{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     baseURL,
		AccessToken: cfg.accessToken,
		HTTPClient:  cfg.httpClient,
		Timeout:     cfg.timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// SetAccessToken replaces the stored bearer token. No validation is
// performed; the new token is carried by subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.apiClient.SetAccessToken(token)
}

// BaseURL returns the configured homeserver base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Do issues a raw request to {baseURL}/_synapse/admin/{relativeURL} and
// returns the raw response. payload, when non-nil, is sent as the request
// body (typically JSON text); supplying a payload with a GET request is
// rejected before any network activity.
//
// Status codes in [300, 500) surface as *APIError. Status codes below 300
// or at 500 and above are returned as ordinary responses — including 5xx —
// so callers wanting stricter handling must inspect Response.StatusCode.
func (c *Client) Do(ctx context.Context, method, relativeURL string, payload []byte) (*Response, error) {
	resp, err := c.apiClient.Send(ctx, method, relativeURL, payload)
	if err != nil {
		return nil, wrapError(err)
	}
	return resp, nil
}
