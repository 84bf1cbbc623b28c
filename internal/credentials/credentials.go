// Package credentials wraps the cookie-backed session state of the
// GreenTrails client. The backend uses static Basic auth: the token minted
// at login is reused verbatim for every later call until logout.
package credentials

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Cookie keys written by a successful login. Names match the backend's
// Italian resource naming.
const (
	CookieUser     = "user"
	CookieToken    = "credenziali"
	CookieUserID   = "userId"
	CookieEmail    = "email"
	CookiePassword = "password"
	CookieRole     = "ruolo"
)

// AuthenticatedUser is the subset of the login response the store persists.
type AuthenticatedUser struct {
	ID       string
	Email    string
	Password string
	Role     string
	Raw      json.RawMessage
}

// AuthAPI issues the trial-credential login request against the backend.
type AuthAPI interface {
	LoginCheck(ctx context.Context, token string) (AuthenticatedUser, error)
}

// Store tracks login state for the process. The logged-in flag reflects only
// the last successful Login in this process; cookie presence is checked
// separately via HasCredential.
type Store struct {
	secure bool

	mu     sync.Mutex
	logged bool
}

func NewStore(secureCookies bool) *Store {
	return &Store{secure: secureCookies}
}

// Login computes the Basic token from the supplied credentials, verifies it
// with a single GET against the user resource and, on success, persists the
// token plus selected profile fields as cookies. On failure nothing is
// persisted and the error propagates unchanged.
func (s *Store) Login(ctx context.Context, api AuthAPI, w http.ResponseWriter, email, password string) (AuthenticatedUser, error) {
	token := BasicToken(email, password)

	user, err := api.LoginCheck(ctx, token)
	if err != nil {
		return AuthenticatedUser{}, err
	}

	s.setCookie(w, CookieUser, string(user.Raw))
	// stored JSON-quoted, readers strip the quotes before use
	s.setCookie(w, CookieToken, `"`+token+`"`)
	s.setCookie(w, CookieUserID, user.ID)
	s.setCookie(w, CookieEmail, user.Email)
	s.setCookie(w, CookiePassword, user.Password)
	s.setCookie(w, CookieRole, user.Role)

	s.mu.Lock()
	s.logged = true
	s.mu.Unlock()

	return user, nil
}

// Logout expires every cookie present on the request, not just the
// credential keys. It always succeeds, also when no cookies exist.
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.logged = false
	s.mu.Unlock()

	for _, c := range r.Cookies() {
		http.SetCookie(w, &http.Cookie{
			Name:     c.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// IsLoggedIn reports the in-process flag set by the last successful Login.
// It is not derived from cookie presence, so it is false after a restart
// even though the credential cookie may still be valid.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged
}

func (s *Store) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// BasicToken returns base64(email:password), the credential reused for
// every authenticated call.
func BasicToken(email, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
}

// Token reads the credential cookie fresh from the request and strips the
// wrapping quotes it was stored with. Returns "" when the cookie is absent:
// the resulting "Basic " header is still constructible and the backend's
// rejection is what surfaces to the caller.
func Token(r *http.Request) string {
	return strings.ReplaceAll(Get(r, CookieToken), `"`, "")
}

// Get returns the decoded value of a session cookie, or "" when absent.
func Get(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value
	}
	return v
}

// HasCredential reports whether a credential cookie is present on the
// request. Unlike the in-process flag this survives reloads, so routing
// guards use it.
func HasCredential(r *http.Request) bool {
	return Token(r) != ""
}
