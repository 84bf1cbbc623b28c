package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const reviewsPath = "/api/recensioni"

// === Review Methods ===

func (c *Client) GetReviewsByActivity(ctx context.Context, activityID int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/perAttivita/%d", reviewsPath, activityID), nil, "")
}

func (c *Client) GetReview(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d", reviewsPath, id), nil, "")
}

// CreateReview posts a review as a multipart form; the image part is
// optional and forwarded opaquely.
func (c *Client) CreateReview(r *http.Request, activityID int64, stars int, description string, ecoValuesID int64, image *Attachment) (json.RawMessage, error) {
	fields := url.Values{}
	fields.Set("idAttivita", fmt.Sprint(activityID))
	fields.Set("valutazioneStelleEsperienza", fmt.Sprint(stars))
	fields.Set("descrizione", description)
	fields.Set("idValori", fmt.Sprint(ecoValuesID))

	var attachments []Attachment
	if image != nil {
		image.Field = "immagine"
		attachments = append(attachments, *image)
	}

	return c.postMultipart(r.Context(), reviewsPath, fields, attachments, basicAuth(r))
}
