package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const activityBookingsPath = "/api/prenotazioni-attivita-turistica"

// === Tourist Activity Booking Methods ===

func (c *Client) CheckActivityAvailability(r *http.Request, activityID int64, date string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("idAttivita", fmt.Sprint(activityID))
	query.Set("dataInizio", date)

	return c.get(r.Context(), fmt.Sprintf("%s/perAttivita/%d/disponibilita", activityBookingsPath, activityID), query, basicAuth(r))
}

func (c *Client) BookActivity(r *http.Request, itineraryID, activityID int64, adults, children int, from, to string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("idItinerario", fmt.Sprint(itineraryID))
	params.Set("idAttivita", fmt.Sprint(activityID))
	params.Set("numAdulti", fmt.Sprint(adults))
	params.Set("numBambini", fmt.Sprint(children))
	params.Set("dataInizio", from)
	params.Set("dataFine", to)

	return c.postForm(r.Context(), activityBookingsPath, params, basicAuth(r))
}

// GetActivityBookings lists the logged-in visitor's activity bookings.
func (c *Client) GetActivityBookings(r *http.Request) (json.RawMessage, error) {
	return c.get(r.Context(), activityBookingsPath, nil, basicAuth(r))
}

func (c *Client) ConfirmActivityBooking(r *http.Request, id int64, adults, children int, from, to string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("numAdulti", fmt.Sprint(adults))
	params.Set("numBambini", fmt.Sprint(children))
	params.Set("dataInizio", from)
	params.Set("dataFine", to)

	return c.postForm(r.Context(), fmt.Sprintf("%s/%d", activityBookingsPath, id), params, basicAuth(r))
}

func (c *Client) DeleteActivityBooking(r *http.Request, id int64) error {
	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", activityBookingsPath, id), nil, basicAuth(r))
	return err
}
