package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/validation"
)

// ReviewCreatePostHandler posts a review with an optional image. The
// upload is validated locally before anything is forwarded.
func (h *Handler) ReviewCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	if !validMultipartCSRF(r) {
		http.Error(w, "Invalid CSRF token", http.StatusForbidden)
		return
	}

	if err := validation.ValidateAndParseMultipart(r, w, h.Public.MaxAttachmentSizeBytes); err != nil {
		h.redirectWithFlash(w, r, "/", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	activityID := formInt64(r, "idAttivita")
	targetURL := fmt.Sprintf("/attivita/%d", activityID)

	var image *apiclient.Attachment
	if files := r.MultipartForm.File["immagine"]; len(files) > 0 {
		fileHeader := files[0]
		if err := validation.ValidateAttachment(fileHeader, validation.BuildAllowedMimeMap(h.Public.AllowedImageMimeTypes)); err != nil {
			h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.redirectWithFlash(w, r, targetURL, flashCookieError, "Immagine non leggibile")
			return
		}
		defer file.Close()

		image = &apiclient.Attachment{Filename: fileHeader.Filename, Reader: file}
	}

	_, err := h.APIClient.CreateReview(r,
		activityID,
		formInt(r, "valutazioneStelleEsperienza"),
		r.FormValue("descrizione"),
		formInt64(r, "idValori"),
		image,
	)
	if err != nil {
		logger.Log.Error("creating review via API", "activity", activityID, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Recensione inviata!")
}
