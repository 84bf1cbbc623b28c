package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const activitiesPath = "/api/attivita"

// === Activity Methods ===
// Browsing endpoints are public; manager operations carry the Basic header.

func (c *Client) GetActivity(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d", activitiesPath, id), nil, "")
}

func (c *Client) GetActivitiesByPrice(ctx context.Context, limit int) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("limite", fmt.Sprint(limit))

	return c.get(ctx, activitiesPath+"/perPrezzo", query, "")
}

func (c *Client) GetLodgings(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, activitiesPath+"/alloggi", nil, "")
}

func (c *Client) GetTouristActivities(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, activitiesPath+"/attivitaTuristiche", nil, "")
}

func (c *Client) GetAllActivities(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, activitiesPath+"/all", nil, "")
}

// GetManagerActivities lists the activities owned by the logged-in manager.
func (c *Client) GetManagerActivities(r *http.Request) (json.RawMessage, error) {
	return c.get(r.Context(), activitiesPath+"/perGestore", nil, basicAuth(r))
}

// CreateActivity forwards the activity fields as form params.
func (c *Client) CreateActivity(r *http.Request, fields url.Values) (json.RawMessage, error) {
	return c.postForm(r.Context(), activitiesPath, fields, basicAuth(r))
}

// UpdateActivity overwrites an activity the manager owns.
func (c *Client) UpdateActivity(r *http.Request, id int64, fields url.Values) (json.RawMessage, error) {
	return c.postForm(r.Context(), fmt.Sprintf("%s/%d", activitiesPath, id), fields, basicAuth(r))
}

func (c *Client) DeleteActivity(r *http.Request, id int64) error {
	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", activitiesPath, id), nil, basicAuth(r))
	return err
}
