package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/credentials"
)

func newAuthHandler(t *testing.T, backend http.Handler) *Handler {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	registry := config.NewRegistry()
	registry.Set(server.URL)

	return &Handler{
		Public:      config.Public{},
		APIClient:   apiclient.New(registry),
		Credentials: credentials.NewStore(false),
	}
}

func postLogin(h *Handler, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.LoginPostHandler(w, req)
	return w
}

func TestLoginPostSuccess(t *testing.T) {
	h := newAuthHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/utenti", r.URL.Path)
		w.Write([]byte(`{"data":{"id":7,"email":"anna@example.com","password":"pw","authorities":[{"authority":"VISITATORE"}]}}`))
	}))

	w := postLogin(h, "anna@example.com", "pw")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/area-riservata", w.Header().Get("Location"))

	names := make(map[string]string)
	for _, c := range w.Result().Cookies() {
		names[c.Name] = c.Value
	}
	for _, expected := range []string{"user", "credenziali", "userId", "email", "password", "ruolo"} {
		assert.Contains(t, names, expected)
	}

	// token stored JSON-quoted
	token, err := url.QueryUnescape(names["credenziali"])
	require.NoError(t, err)
	assert.Equal(t, `"`+credentials.BasicToken("anna@example.com", "pw")+`"`, token)

	assert.True(t, h.Credentials.IsLoggedIn())
}

func TestLoginPostFailure(t *testing.T) {
	h := newAuthHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "credenziali non valide", http.StatusUnauthorized)
	}))

	w := postLogin(h, "anna@example.com", "wrong")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// nothing persisted beyond the flash cookies
	for _, c := range w.Result().Cookies() {
		assert.NotContains(t, []string{"user", "credenziali", "userId", "email", "password", "ruolo"}, c.Name)
	}
	assert.False(t, h.Credentials.IsLoggedIn())
}

func TestLogoutExpiresEverything(t *testing.T) {
	h := newAuthHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "credenziali", Value: "x"})
	req.AddCookie(&http.Cookie{Name: "email", Value: "y"})

	w := httptest.NewRecorder()
	h.LogoutHandler(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge, "cookie %s should be expired", c.Name)
	}
}
