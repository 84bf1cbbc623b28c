package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greentrails-dev/greentrails/internal/credentials"
)

func TestNeedCredential(t *testing.T) {
	handler := NeedCredential(false)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	t.Run("without credential redirects to login with a flash", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/area-riservata", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		var flash *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == "flash_error" {
				flash = c
			}
		}
		assert.NotNil(t, flash)
	})

	t.Run("with credential passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/area-riservata", nil)
		req.AddCookie(&http.Cookie{
			Name:  credentials.CookieToken,
			Value: url.QueryEscape(`"dG9rZW4="`),
		})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
