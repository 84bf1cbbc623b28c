package apiclient

import (
	"context"
	"encoding/json"
)

const registrationPath = "/api/v1/greentrails"

// Register creates an account through the versioned registration endpoint.
// The payload is forwarded as-is; validation is the backend's concern.
func (c *Client) Register(ctx context.Context, userData json.RawMessage) (json.RawMessage, error) {
	return raw(c.do(ctx, "POST", registrationPath, nil, jsonBody(userData), "application/json", ""))
}
