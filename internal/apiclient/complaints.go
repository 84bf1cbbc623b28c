package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const complaintsPath = "/api/segnalazioni"

// === Complaint Methods ===

// SendComplaint files a complaint against an activity, with any number of
// image attachments, as a multipart form.
func (c *Client) SendComplaint(r *http.Request, activityID int64, description string, images []Attachment) (json.RawMessage, error) {
	fields := url.Values{}
	fields.Set("descrizione", description)
	fields.Set("idAttivita", fmt.Sprint(activityID))

	for i := range images {
		images[i].Field = "immagine"
	}

	return c.postMultipart(r.Context(), complaintsPath, fields, images, basicAuth(r))
}

// GetComplaints lists complaints, optionally only the ones eligible to be
// answered with a review.
func (c *Client) GetComplaints(r *http.Request, forReview bool) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("isForRecensione", fmt.Sprint(forReview))

	return c.get(r.Context(), complaintsPath, query, basicAuth(r))
}
