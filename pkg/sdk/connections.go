package matchd

import (
	"context"
	"net/http"
)

// RequestConnection creates a pending connection request.
func (c *Client) RequestConnection(ctx context.Context, requesterID, targetID, message string) (Connection, error) {
	body := map[string]string{
		"requester_id": requesterID,
		"target_id":    targetID,
		"message":      message,
	}
	var out Connection
	if err := c.do(ctx, http.MethodPost, "/v1/connections", body, &out); err != nil {
		return Connection{}, err
	}
	return out, nil
}

// Connections lists a subject's sent and received requests.
func (c *Client) Connections(ctx context.Context, subjectID string) (ConnectionList, error) {
	var out ConnectionList
	if err := c.do(ctx, http.MethodGet, "/v1/connections/"+subjectID, nil, &out); err != nil {
		return ConnectionList{}, err
	}
	return out, nil
}

// RespondConnection resolves a pending request to accepted or rejected.
func (c *Client) RespondConnection(ctx context.Context, id string, accept bool) (Connection, error) {
	body := map[string]bool{"accept": accept}
	var out Connection
	if err := c.do(ctx, http.MethodPost, "/v1/connections/"+id+"/respond", body, &out); err != nil {
		return Connection{}, err
	}
	return out, nil
}
