package synapseadmin

import (
	"context"

	"github.com/synapseadmin/client-go/internal/api"
)

// ServerVersion contains the homeserver version information.
type ServerVersion = api.ServerVersion

// GetServerVersion retrieves the homeserver version via
// GET v1/server_version. This endpoint does not require authentication.
func (c *Client) GetServerVersion(ctx context.Context) (*ServerVersion, error) {
	version, err := c.apiClient.GetServerVersion(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return version, nil
}
