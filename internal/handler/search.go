package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
)

// SearchGetHandler renders the position search form and, when coordinates
// are present in the query, the matching activities.
func (h *Handler) SearchGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Results  []domain.Activity
		Searched bool
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	latitude := r.URL.Query().Get("latitudine")
	longitude := r.URL.Query().Get("longitudine")
	radius := r.URL.Query().Get("raggio")

	if latitude != "" && longitude != "" {
		templateData.Searched = true

		raw, err := h.APIClient.SearchByPosition(r.Context(), latitude, longitude, radius)
		if err != nil {
			templateData.Error = template.HTMLEscapeString(err.Error())
		} else if err := decodePayload(raw, &templateData.Results); err != nil {
			templateData.Error = template.HTMLEscapeString(err.Error())
		}
	}

	h.renderTemplate(w, "ricerca.html", templateData)
}
