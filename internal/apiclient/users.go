package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/domain"
)

const usersPath = "/api/utenti"

// LoginCheck verifies a trial credential with a single authenticated GET
// against the user resource. The decoded profile fields are the ones the
// credential store persists as cookies. Implements credentials.AuthAPI.
func (c *Client) LoginCheck(ctx context.Context, token string) (credentials.AuthenticatedUser, error) {
	body, err := c.get(ctx, usersPath, nil, "Basic "+token)
	if err != nil {
		return credentials.AuthenticatedUser{}, err
	}

	var response struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return credentials.AuthenticatedUser{}, fmt.Errorf("cannot decode login response: %w", err)
	}

	var profile struct {
		ID          json.Number `json:"id"`
		Email       string      `json:"email"`
		Password    string      `json:"password"`
		Authorities []struct {
			Authority string `json:"authority"`
		} `json:"authorities"`
	}
	if err := json.Unmarshal(response.Data, &profile); err != nil {
		return credentials.AuthenticatedUser{}, fmt.Errorf("cannot decode login response: %w", err)
	}

	user := credentials.AuthenticatedUser{
		ID:       profile.ID.String(),
		Email:    profile.Email,
		Password: profile.Password,
		Raw:      response.Data,
	}
	if len(profile.Authorities) > 0 {
		user.Role = profile.Authorities[0].Authority
	}
	return user, nil
}

// RegisterUser registers a visitor or an activity manager. The payload goes
// as a JSON body; the manager switch travels as a query parameter.
func (c *Client) RegisterUser(ctx context.Context, isManager bool, data json.RawMessage) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("isGestore", fmt.Sprint(isManager))

	return c.putForm(ctx, usersPath, query, jsonBody(data), "")
}

// SubmitQuestionnaire forwards the eight preference answers as form params.
func (c *Client) SubmitQuestionnaire(r *http.Request, q domain.Questionnaire) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("viaggioPreferito", q.ViaggioPreferito)
	params.Set("alloggioPreferito", q.AlloggioPreferito)
	params.Set("attivitaPreferita", q.AttivitaPreferita)
	params.Set("preferenzaAlimentare", q.PreferenzaAlimentare)
	params.Set("animaleDomestico", q.AnimaleDomestico)
	params.Set("budgetPreferito", q.BudgetPreferito)
	params.Set("souvenir", q.Souvenir)
	params.Set("stagioniPreferite", q.StagioniPreferite)

	return c.postForm(r.Context(), usersPath+"/questionario", params, basicAuth(r))
}

// GetPreferences returns the stored questionnaire answers, opaquely.
func (c *Client) GetPreferences(r *http.Request) (json.RawMessage, error) {
	return c.get(r.Context(), usersPath+"/preferenze", nil, basicAuth(r))
}
