package synapseadmin

import "context"

// RoomMembers lists the members of a room via GET v1/rooms/{roomID}/members.
// The expected shape is a list of member IDs plus a total count, but this
// library does not enforce it; the decoded JSON body is returned as-is.
func (c *Client) RoomMembers(ctx context.Context, roomID string) (map[string]any, error) {
	members, err := c.apiClient.GetRoomMembers(ctx, roomID)
	if err != nil {
		return nil, wrapError(err)
	}
	return members, nil
}

// JoinUserToRoom joins a local user to a room via POST v1/join/{roomID}.
// The response body is discarded.
func (c *Client) JoinUserToRoom(ctx context.Context, roomID, userID string) error {
	return wrapError(c.apiClient.JoinRoom(ctx, roomID, userID))
}
