package handler

import (
	"encoding/json"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/validation"
)

func (h *Handler) QuestionnaireGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Preferences json.RawMessage
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	// previously saved answers prefill the form; a miss is not an error
	if prefs, err := h.APIClient.GetPreferences(r); err == nil {
		templateData.Preferences = prefs
	}

	h.renderTemplate(w, "questionario.html", templateData)
}

// QuestionnairePostHandler validates the eight answers locally before any
// network call. The dialog messages mirror the backend's Italian wording;
// either way the visitor lands back on the reserved area.
func (h *Handler) QuestionnairePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/area-riservata"

	q := domain.Questionnaire{
		ViaggioPreferito:     r.FormValue("viaggioPreferito"),
		AlloggioPreferito:    r.FormValue("alloggioPreferito"),
		AttivitaPreferita:    r.FormValue("attivitaPreferita"),
		PreferenzaAlimentare: r.FormValue("preferenzaAlimentare"),
		AnimaleDomestico:     r.FormValue("animaleDomestico"),
		BudgetPreferito:      r.FormValue("budgetPreferito"),
		Souvenir:             r.FormValue("souvenir"),
		StagioniPreferite:    r.FormValue("stagioniPreferite"),
	}

	if err := validation.ValidateQuestionnaire(q); err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, err.Error())
		return
	}

	if _, err := h.APIClient.SubmitQuestionnaire(r, q); err != nil {
		logger.Log.Error("submitting questionnaire via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Preferenze non inviate")
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Preferenze inviate")
}
