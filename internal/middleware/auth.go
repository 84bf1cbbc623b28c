package middleware

import (
	"encoding/base64"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/credentials"
)

const flashCookieError = "flash_error"

// NeedCredential gates the reserved area. The guard is derived from the
// credential cookie's presence rather than the in-process login flag, so a
// page reload does not bounce a still-authenticated visitor to the login
// page. The token is not validated client-side: a stale credential passes
// the guard and the backend's rejection surfaces on the page itself.
func NeedCredential(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !credentials.HasCredential(r) {
				redirectToLogin(w, r, secureCookies, "Effettua il login per continuare")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, secureCookies bool, errorMsg string) {
	// base64 keeps special characters cookie-safe
	encodedMessage := base64.StdEncoding.EncodeToString([]byte(errorMsg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieError,
		Value:    encodedMessage,
		Path:     "/",
		MaxAge:   300, // enough time for the redirect
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
