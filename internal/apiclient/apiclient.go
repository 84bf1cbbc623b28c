// Package apiclient handles all communication with the GreenTrails backend.
// Every method is a single stateless request/response round trip: no retry,
// no caching, no client-side translation of backend errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/credentials"
	internal_errors "github.com/greentrails-dev/greentrails/internal/errors"
)

// Client issues requests against the backend REST API. The origin is read
// from the registry on every call, not captured at construction, so the
// runtime config loader's write is visible to all subsequently issued
// requests.
type Client struct {
	Base       *config.Registry
	HttpClient *http.Client
}

func New(base *config.Registry) *Client {
	return &Client{
		Base:       base,
		HttpClient: &http.Client{},
	}
}

// Attachment is one file part of a multipart request, forwarded opaquely.
type Attachment struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// do is the single, unified helper for making API requests. auth is the
// ready-made Authorization header value; empty means a public endpoint.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType, auth string) (*http.Response, error) {
	u := c.Base.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// raw drains the response and hands the backend body back untouched.
// Non-2xx responses become an ErrorWithStatusCode carrying the body as-is.
func raw(resp *http.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    string(body),
			StatusCode: resp.StatusCode,
		}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, auth string) (json.RawMessage, error) {
	return raw(c.do(ctx, http.MethodGet, path, query, nil, "", auth))
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, auth string) (json.RawMessage, error) {
	return raw(c.do(ctx, http.MethodDelete, path, query, nil, "", auth))
}

// postForm sends the payload URL-encoded. Mutating endpoints take their
// fields this way rather than as a JSON body; the backend depends on it.
func (c *Client) postForm(ctx context.Context, path string, params url.Values, auth string) (json.RawMessage, error) {
	return raw(c.do(ctx, http.MethodPost, path, nil, strings.NewReader(params.Encode()), "application/x-www-form-urlencoded", auth))
}

func (c *Client) putForm(ctx context.Context, path string, query url.Values, body io.Reader, auth string) (json.RawMessage, error) {
	return raw(c.do(ctx, http.MethodPut, path, query, body, "application/json", auth))
}

func (c *Client) postMultipart(ctx context.Context, path string, fields url.Values, attachments []Attachment, auth string) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, v := range values {
			if err := writer.WriteField(key, v); err != nil {
				return nil, fmt.Errorf("failed to build multipart form: %w", err)
			}
		}
	}
	for _, a := range attachments {
		part, err := writer.CreateFormFile(a.Field, a.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build multipart form: %w", err)
		}
		if _, err := io.Copy(part, a.Reader); err != nil {
			return nil, fmt.Errorf("failed to copy attachment %s: %w", a.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	return raw(c.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType(), auth))
}

func jsonBody(data json.RawMessage) io.Reader {
	if len(data) == 0 {
		return nil
	}
	return bytes.NewReader(data)
}

// basicAuth builds the Authorization header from the credential cookie of
// the incoming request, read fresh per call. When the cookie is absent the
// value degrades to "Basic " and the backend's rejection surfaces to the
// caller; constructing the request never fails on the client side.
func basicAuth(r *http.Request) string {
	return "Basic " + credentials.Token(r)
}
