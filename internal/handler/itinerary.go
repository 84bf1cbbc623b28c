package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

func (h *Handler) ItinerariesGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Itineraries       []domain.Itinerary
		ActiveItineraryID int64
		HasActive         bool
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetItineraries(r)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(raw, &templateData.Itineraries); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	userID := credentials.Get(r, credentials.CookieUserID)
	if userID != "" {
		id, ok, err := h.LocalStore.ActiveItinerary(userID)
		if err != nil {
			logger.Log.Error("reading active itinerary", "user", userID, "error", err)
		}
		templateData.ActiveItineraryID = id
		templateData.HasActive = ok
	}

	h.renderTemplate(w, "itinerari.html", templateData)
}

func (h *Handler) ItineraryGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		Itinerary domain.Itinerary
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetItinerary(r, id)
	if err != nil {
		h.redirectWithFlash(w, r, "/itinerari", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}
	if err := decodePayload(raw, &templateData.Itinerary); err != nil {
		h.redirectWithFlash(w, r, "/itinerari", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.renderTemplate(w, "itinerario.html", templateData)
}

func (h *Handler) ItineraryCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/itinerari"

	if _, err := h.APIClient.CreateItinerary(r); err != nil {
		logger.Log.Error("creating itinerary via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Itinerario creato con successo!")
}

// ItineraryGeneratePostHandler asks the backend to build an itinerary from
// the visitor's questionnaire preferences.
func (h *Handler) ItineraryGeneratePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/itinerari"

	userID := credentials.Get(r, credentials.CookieUserID)

	if _, err := h.APIClient.GenerateItinerary(r, userID); err != nil {
		logger.Log.Error("generating itinerary via API", "user", userID, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Itinerario generato con successo!")
}

func (h *Handler) ItineraryDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/itinerari"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.APIClient.DeleteItinerary(r, id); err != nil {
		logger.Log.Error("deleting itinerary via API", "itinerary", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	// forget the selection when it pointed at the deleted itinerary
	userID := credentials.Get(r, credentials.CookieUserID)
	if userID != "" {
		if active, ok, _ := h.LocalStore.ActiveItinerary(userID); ok && active == id {
			if err := h.LocalStore.ClearActiveItinerary(userID); err != nil {
				logger.Log.Error("clearing active itinerary", "user", userID, "error", err)
			}
		}
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Itinerario eliminato con successo!")
}

// ItinerarySelectPostHandler remembers the itinerary the visitor is
// booking into. The selection lives in the local store, not a cookie, so
// logout does not clear it.
func (h *Handler) ItinerarySelectPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/itinerari"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	userID := credentials.Get(r, credentials.CookieUserID)
	if userID == "" {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Effettua il login per continuare")
		return
	}

	if err := h.LocalStore.SetActiveItinerary(userID, id); err != nil {
		logger.Log.Error("saving active itinerary", "user", userID, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Selezione non salvata")
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, fmt.Sprintf("Itinerario %d selezionato", id))
}
