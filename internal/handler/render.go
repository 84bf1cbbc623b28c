package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/middleware"
)

// CommonTemplateData holds fields that are common to all page templates.
// Pages embed it in their per-page template data struct.
type CommonTemplateData struct {
	Error            string
	Success          string
	LoggedIn         bool
	UserEmail        string
	UserRole         string
	CSRFToken        string
	EmailPlaceholder string // Pre-filled email for auth forms (from cookie, not URL)

	MaxAttachmentSizeBytes int64
	AllowedImageMimeTypes  []string
}

// InitCommonTemplateData drains the flash cookies into the dialog fields
// and resolves the session from the request's cookies.
func (h *Handler) InitCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	return CommonTemplateData{
		Error:            h.readFlash(w, r, flashCookieError),
		Success:          h.readFlash(w, r, flashCookieSuccess),
		LoggedIn:         credentials.HasCredential(r),
		UserEmail:        credentials.Get(r, credentials.CookieEmail),
		UserRole:         credentials.Get(r, credentials.CookieRole),
		CSRFToken:        middleware.CSRFTokenFromContext(r.Context()),
		EmailPlaceholder: h.readFlash(w, r, emailPrefillCookie),

		MaxAttachmentSizeBytes: h.Public.MaxAttachmentSizeBytes,
		AllowedImageMimeTypes:  h.Public.AllowedImageMimeTypes,
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}
