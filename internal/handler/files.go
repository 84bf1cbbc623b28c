package handler

import (
	"html/template"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/utils"
)

// MediaListGetHandler lists the uploaded files of a media collection.
func (h *Handler) MediaListGetHandler(w http.ResponseWriter, r *http.Request) {
	media := chi.URLParam(r, "media")

	var templateData struct {
		CommonTemplateData
		Media string
		Files []string
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)
	templateData.Media = media

	raw, err := h.APIClient.ListFiles(r.Context(), media)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(raw, &templateData.Files); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	h.renderTemplate(w, "media.html", templateData)
}

// FileGetHandler streams an uploaded file from the backend to the browser,
// bytes and content type untouched.
func (h *Handler) FileGetHandler(w http.ResponseWriter, r *http.Request) {
	media := chi.URLParam(r, "media")
	filename := chi.URLParam(r, "filename")

	body, contentType, err := h.APIClient.ServeFile(r.Context(), media, filename)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		logger.Log.Error("streaming file", "media", media, "file", filename, "error", err)
	}
}
