package apiclient

import (
	"context"
	"encoding/json"
	"net/url"
)

const searchPath = "/api/ricerca"

// SearchByPosition finds activities around a coordinate. Public endpoint;
// the coordinates travel as form params like every other mutating call.
func (c *Client) SearchByPosition(ctx context.Context, latitude, longitude, radius string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("latitudine", latitude)
	params.Set("longitudine", longitude)
	params.Set("raggio", radius)

	return c.postForm(ctx, searchPath+"/perPosizione", params, "")
}
