package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	internal_errors "github.com/greentrails-dev/greentrails/internal/errors"
)

const filesPath = "/api/file"

// === Uploaded Media Methods ===

func (c *Client) ListFiles(ctx context.Context, media string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%s", filesPath, media), nil, "")
}

// ServeFile streams an uploaded file. The caller owns the returned body and
// must close it; the content type is whatever the backend reports.
func (c *Client) ServeFile(ctx context.Context, media, filename string) (io.ReadCloser, string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s/%s", filesPath, media, filename), nil, nil, "", "")
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, "", &internal_errors.ErrorWithStatusCode{
			Message:    string(body),
			StatusCode: resp.StatusCode,
		}
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}
