package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const itinerariesPath = "/api/itinerari"

// === Itinerary Methods ===
// All itinerary operations are visitor-owned and authenticated.

func (c *Client) GetItineraries(r *http.Request) (json.RawMessage, error) {
	return c.get(r.Context(), itinerariesPath, nil, basicAuth(r))
}

func (c *Client) GetItinerary(r *http.Request, id int64) (json.RawMessage, error) {
	return c.get(r.Context(), fmt.Sprintf("%s/%d", itinerariesPath, id), nil, basicAuth(r))
}

func (c *Client) CreateItinerary(r *http.Request) (json.RawMessage, error) {
	return c.postForm(r.Context(), itinerariesPath, url.Values{}, basicAuth(r))
}

// GenerateItinerary asks the backend to build an itinerary from the
// visitor's questionnaire preferences.
func (c *Client) GenerateItinerary(r *http.Request, userID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("param", userID)

	return c.postForm(r.Context(), itinerariesPath+"/genera", params, basicAuth(r))
}

func (c *Client) DeleteItinerary(r *http.Request, id int64) error {
	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", itinerariesPath, id), nil, basicAuth(r))
	return err
}
