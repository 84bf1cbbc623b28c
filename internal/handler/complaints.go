package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/validation"
)

func (h *Handler) ComplaintsGetHandler(w http.ResponseWriter, r *http.Request) {
	forReview := r.URL.Query().Get("isForRecensione") == "true"

	var templateData struct {
		CommonTemplateData
		Complaints []domain.Complaint
		Activities []domain.Activity
		ForReview  bool
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)
	templateData.ForReview = forReview

	raw, err := h.APIClient.GetComplaints(r, forReview)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(raw, &templateData.Complaints); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	// activity list feeds the complaint form's dropdown
	if activities, err := h.APIClient.GetAllActivities(r.Context()); err == nil {
		if err := decodePayload(activities, &templateData.Activities); err != nil {
			logger.Log.Error("decoding activities", "error", err)
		}
	}

	h.renderTemplate(w, "segnalazioni.html", templateData)
}

// ComplaintCreatePostHandler files a complaint with any number of image
// attachments. All uploads are validated before the request is forwarded.
func (h *Handler) ComplaintCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/segnalazioni"

	if !validMultipartCSRF(r) {
		http.Error(w, "Invalid CSRF token", http.StatusForbidden)
		return
	}

	if err := validation.ValidateAndParseMultipart(r, w, h.Public.MaxAttachmentSizeBytes); err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	allowedMimes := validation.BuildAllowedMimeMap(h.Public.AllowedImageMimeTypes)

	var images []apiclient.Attachment
	for _, fileHeader := range r.MultipartForm.File["immagine"] {
		if err := validation.ValidateAttachment(fileHeader, allowedMimes); err != nil {
			h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.redirectWithFlash(w, r, targetURL, flashCookieError, "Immagine non leggibile")
			return
		}
		defer file.Close()

		images = append(images, apiclient.Attachment{Filename: fileHeader.Filename, Reader: file})
	}

	_, err := h.APIClient.SendComplaint(r, formInt64(r, "idAttivita"), r.FormValue("descrizione"), images)
	if err != nil {
		logger.Log.Error("sending complaint via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Segnalazione inviata!")
}
