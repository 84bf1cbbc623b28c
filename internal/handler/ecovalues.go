package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

func ecoValuesFromForm(r *http.Request) domain.EcoValues {
	return domain.EcoValues{
		PoliticheAntispreco:   r.FormValue("politicheAntispreco") == "on",
		ProdottiLocali:        r.FormValue("prodottiLocali") == "on",
		EnergiaVerde:          r.FormValue("energiaVerde") == "on",
		RaccoltaDifferenziata: r.FormValue("raccoltaDifferenziata") == "on",
		LimiteEmissioneCO2:    r.FormValue("limiteEmissioneCO2") == "on",
		ContattoConNatura:     r.FormValue("contattoConNatura") == "on",
	}
}

func (h *Handler) EcoValuesCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	if _, err := h.APIClient.CreateEcoValues(r, ecoValuesFromForm(r)); err != nil {
		logger.Log.Error("creating eco values via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Valori di ecosostenibilità salvati!")
}

func (h *Handler) EcoValuesUpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := h.APIClient.UpdateEcoValues(r, id, ecoValuesFromForm(r)); err != nil {
		logger.Log.Error("updating eco values via API", "values", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Valori di ecosostenibilità aggiornati!")
}
