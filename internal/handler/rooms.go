package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

// RoomGetHandler renders a single room with its booking form.
func (h *Handler) RoomGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		Room domain.Room
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetRoom(r.Context(), id)
	if err != nil {
		h.redirectWithFlash(w, r, "/", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}
	if err := decodePayload(raw, &templateData.Room); err != nil {
		h.redirectWithFlash(w, r, "/", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.renderTemplate(w, "camera.html", templateData)
}

func (h *Handler) RoomCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	_, err := h.APIClient.CreateRoom(r,
		formInt64(r, "idAlloggio"),
		r.FormValue("tipoCamera"),
		r.FormValue("descrizione"),
		formInt(r, "disponibilita"),
		formInt(r, "capienza"),
		r.FormValue("prezzo"),
	)
	if err != nil {
		logger.Log.Error("creating room via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Camera creata con successo!")
}

func (h *Handler) RoomDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.APIClient.DeleteRoom(r, id); err != nil {
		logger.Log.Error("deleting room via API", "room", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Camera eliminata con successo!")
}
