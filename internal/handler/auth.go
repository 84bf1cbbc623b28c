package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/logger"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)
	if templateData.EmailPlaceholder == "" {
		templateData.EmailPlaceholder = parseEmail(r)
	}

	h.renderTemplate(w, "login.html", templateData)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.Credentials.Login(r.Context(), h.APIClient, w, email, password)
	if err != nil {
		logger.Log.Error("during login API call", "error", err)
		h.setFlash(w, flashCookieError, template.HTMLEscapeString(err.Error()))
		h.setFlash(w, emailPrefillCookie, email)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/area-riservata", http.StatusSeeOther)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.Credentials.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	h.renderTemplate(w, "register.html", templateData)
}

// RegisterPostHandler registers a visitor or an activity manager. The form
// fields travel to the backend as a JSON body; the manager switch is a
// checkbox on the form.
func (h *Handler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/register"

	email := r.FormValue("email")
	isManager := r.FormValue("isGestore") == "on"

	payload, err := json.Marshal(map[string]string{
		"nome":        r.FormValue("nome"),
		"cognome":     r.FormValue("cognome"),
		"email":       email,
		"password":    r.FormValue("password"),
		"dataNascita": r.FormValue("dataNascita"),
	})
	if err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Invalid form data.")
		return
	}

	if _, err := h.APIClient.RegisterUser(r.Context(), isManager, payload); err != nil {
		logger.Log.Error("during registration API call", "error", err)
		h.setFlash(w, flashCookieError, template.HTMLEscapeString(err.Error()))
		h.setFlash(w, emailPrefillCookie, email)
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}

	h.setFlash(w, flashCookieSuccess, "Registrazione avvenuta con successo!")
	h.setFlash(w, emailPrefillCookie, email)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RegisterV1PostHandler registers an account through the versioned
// endpoint. Kept alongside the legacy form because the backend exposes
// both registration paths.
func (h *Handler) RegisterV1PostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/register"

	email := r.FormValue("email")

	payload, err := json.Marshal(map[string]string{
		"nome":        r.FormValue("nome"),
		"cognome":     r.FormValue("cognome"),
		"email":       email,
		"password":    r.FormValue("password"),
		"dataNascita": r.FormValue("dataNascita"),
	})
	if err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Invalid form data.")
		return
	}

	if _, err := h.APIClient.Register(r.Context(), payload); err != nil {
		logger.Log.Error("during registration API call", "error", err)
		h.setFlash(w, flashCookieError, template.HTMLEscapeString(err.Error()))
		h.setFlash(w, emailPrefillCookie, email)
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}

	h.setFlash(w, flashCookieSuccess, "Registrazione avvenuta con successo!")
	h.setFlash(w, emailPrefillCookie, email)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
