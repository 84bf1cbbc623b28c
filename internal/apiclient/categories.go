package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const categoriesPath = "/api/categorie"

// === Category Methods ===

func (c *Client) AddCategory(r *http.Request, categoryID, activityID int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("idAttivita", fmt.Sprint(activityID))
	params.Set("id", fmt.Sprint(categoryID))

	return c.postForm(r.Context(), fmt.Sprintf("%s/%d", categoriesPath, categoryID), params, basicAuth(r))
}

func (c *Client) RemoveCategory(r *http.Request, categoryID, activityID int64) error {
	query := url.Values{}
	query.Set("idAttivita", fmt.Sprint(activityID))
	query.Set("id", fmt.Sprint(categoryID))

	_, err := c.delete(r.Context(), fmt.Sprintf("%s/%d", categoriesPath, categoryID), query, basicAuth(r))
	return err
}

func (c *Client) GetCategory(r *http.Request, id int64) (json.RawMessage, error) {
	return c.get(r.Context(), fmt.Sprintf("%s/%d", categoriesPath, id), nil, basicAuth(r))
}
