package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const roomsPath = "/api/camere"

// === Room Methods ===

func (c *Client) CreateRoom(r *http.Request, lodgingID int64, roomType, description string, availability, capacity int, price string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("idAlloggio", fmt.Sprint(lodgingID))
	params.Set("tipoCamera", roomType)
	params.Set("disponibilita", fmt.Sprint(availability))
	params.Set("descrizione", description)
	params.Set("capienza", fmt.Sprint(capacity))
	params.Set("prezzo", price)

	return c.postForm(r.Context(), roomsPath, params, basicAuth(r))
}

func (c *Client) GetRoomsByLodging(ctx context.Context, lodgingID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/perAlloggio/%d", roomsPath, lodgingID), nil, "")
}

func (c *Client) GetRoom(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d", roomsPath, id), nil, "")
}

func (c *Client) DeleteRoom(r *http.Request, id int64) error {
	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", roomsPath, id), nil, basicAuth(r))
	return err
}
