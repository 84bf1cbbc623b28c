package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const lodgingBookingsPath = "/api/prenotazioni-alloggio"

// === Lodging Booking Methods ===

func (c *Client) BookLodging(r *http.Request, itineraryID, roomID int64, adults, children, rooms int, from, to string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("idItinerario", fmt.Sprint(itineraryID))
	params.Set("idCamera", fmt.Sprint(roomID))
	params.Set("numAdulti", fmt.Sprint(adults))
	params.Set("numBambini", fmt.Sprint(children))
	params.Set("numCamere", fmt.Sprint(rooms))
	params.Set("dataInizio", from)
	params.Set("dataFine", to)

	return c.postForm(r.Context(), lodgingBookingsPath, params, basicAuth(r))
}

func (c *Client) GetLodgingBooking(r *http.Request, id int64) (json.RawMessage, error) {
	return c.get(r.Context(), fmt.Sprintf("%s/%d", lodgingBookingsPath, id), nil, basicAuth(r))
}

// GetLodgingBookings lists the logged-in visitor's lodging bookings.
func (c *Client) GetLodgingBookings(r *http.Request) (json.RawMessage, error) {
	return c.get(r.Context(), lodgingBookingsPath, nil, basicAuth(r))
}

func (c *Client) CheckRoomAvailability(r *http.Request, roomID int64, from, to string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("idCamera", fmt.Sprint(roomID))
	query.Set("dataInizio", from)
	query.Set("dataFine", to)

	return c.get(r.Context(), fmt.Sprintf("%s/perCamera/%d/disponibilita", lodgingBookingsPath, roomID), query, basicAuth(r))
}

// ConfirmLodgingBooking finalizes a booking in a single all-or-nothing
// request; there is no partial-success handling.
func (c *Client) ConfirmLodgingBooking(r *http.Request, id int64, adults, children, rooms int, from, to string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("numAdulti", fmt.Sprint(adults))
	params.Set("numBambini", fmt.Sprint(children))
	params.Set("dataInizio", from)
	params.Set("dataFine", to)
	params.Set("numCamere", fmt.Sprint(rooms))

	return c.postForm(r.Context(), fmt.Sprintf("%s/%d", lodgingBookingsPath, id), params, basicAuth(r))
}

func (c *Client) DeleteLodgingBooking(r *http.Request, id int64) error {
	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", lodgingBookingsPath, id), nil, basicAuth(r))
	return err
}
