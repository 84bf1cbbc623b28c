package handler

import (
	"encoding/json"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

// AreaRiservataGetHandler renders the reserved area: profile summary,
// saved preferences and the remembered active itinerary.
func (h *Handler) AreaRiservataGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Preferences       json.RawMessage
		ActiveItineraryID int64
		HasActive         bool
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	if prefs, err := h.APIClient.GetPreferences(r); err == nil {
		templateData.Preferences = prefs
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

	h.renderTemplate(w, "area_riservata.html", templateData)
}
