package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/greentrails-dev/greentrails/internal/domain"
)

const ecoValuesPath = "/api/valori"

// === Eco-sustainability Value Methods ===

func ecoValuesParams(v domain.EcoValues) url.Values {
	params := url.Values{}
	params.Set("politicheAntispreco", fmt.Sprint(v.PoliticheAntispreco))
	params.Set("prodottiLocali", fmt.Sprint(v.ProdottiLocali))
	params.Set("energiaVerde", fmt.Sprint(v.EnergiaVerde))
	params.Set("raccoltaDifferenziata", fmt.Sprint(v.RaccoltaDifferenziata))
	params.Set("limiteEmissioneCO2", fmt.Sprint(v.LimiteEmissioneCO2))
	params.Set("contattoConNatura", fmt.Sprint(v.ContattoConNatura))
	return params
}

func (c *Client) CreateEcoValues(r *http.Request, v domain.EcoValues) (json.RawMessage, error) {
	return c.postForm(r.Context(), ecoValuesPath, ecoValuesParams(v), basicAuth(r))
}

func (c *Client) UpdateEcoValues(r *http.Request, id int64, v domain.EcoValues) (json.RawMessage, error) {
	return c.postForm(r.Context(), fmt.Sprintf("%s/%d", ecoValuesPath, id), ecoValuesParams(v), basicAuth(r))
}
