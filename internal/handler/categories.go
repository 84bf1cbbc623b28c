package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

// CategoryGetHandler renders a single category for the manager area.
func (h *Handler) CategoryGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		Category domain.Category
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetCategory(r, id)
	if err != nil {
		h.redirectWithFlash(w, r, "/gestione-attivita", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}
	if err := decodePayload(raw, &templateData.Category); err != nil {
		h.redirectWithFlash(w, r, "/gestione-attivita", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.renderTemplate(w, "categoria.html", templateData)
}

func (h *Handler) CategoryAddPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	categoryID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	activityID := formInt64(r, "idAttivita")

	if _, err := h.APIClient.AddCategory(r, categoryID, activityID); err != nil {
		logger.Log.Error("adding category via API", "category", categoryID, "activity", activityID, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Categoria aggiunta!")
}

func (h *Handler) CategoryRemovePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	categoryID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	activityID := formInt64(r, "idAttivita")

	if err := h.APIClient.RemoveCategory(r, categoryID, activityID); err != nil {
		logger.Log.Error("removing category via API", "category", categoryID, "activity", activityID, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Categoria rimossa!")
}
