package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthAPI struct {
	user AuthenticatedUser
	err  error

	gotToken string
	calls    int
}

func (f *fakeAuthAPI) LoginCheck(_ context.Context, token string) (AuthenticatedUser, error) {
	f.calls++
	f.gotToken = token
	if f.err != nil {
		return AuthenticatedUser{}, f.err
	}
	return f.user, nil
}

func cookieMap(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestLoginSuccessSetsExactlySixCookies(t *testing.T) {
	api := &fakeAuthAPI{user: AuthenticatedUser{
		ID:       "7",
		Email:    "mario@example.com",
		Password: "segreta",
		Role:     "VISITATORE",
		Raw:      json.RawMessage(`{"id":7}`),
	}}
	store := NewStore(false)
	rec := httptest.NewRecorder()

	user, err := store.Login(context.Background(), api, rec, "mario@example.com", "segreta")
	require.NoError(t, err)
	assert.Equal(t, "VISITATORE", user.Role)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, BasicToken("mario@example.com", "segreta"), api.gotToken)

	cookies := cookieMap(rec)
	require.Len(t, cookies, 6)
	for _, name := range []string{CookieUser, CookieToken, CookieUserID, CookieEmail, CookiePassword, CookieRole} {
		assert.Contains(t, cookies, name)
	}

	token, err := url.QueryUnescape(cookies[CookieToken].Value)
	require.NoError(t, err)
	assert.Equal(t, `"`+BasicToken("mario@example.com", "segreta")+`"`, token)

	assert.True(t, store.IsLoggedIn())
}

func TestLoginFailurePersistsNothing(t *testing.T) {
	api := &fakeAuthAPI{err: errors.New("backend returned status 401")}
	store := NewStore(false)
	rec := httptest.NewRecorder()

	_, err := store.Login(context.Background(), api, rec, "mario@example.com", "sbagliata")
	require.Error(t, err)

	assert.Empty(t, rec.Result().Cookies())
	assert.False(t, store.IsLoggedIn())
}

func TestLogoutExpiresEveryCookie(t *testing.T) {
	store := NewStore(false)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(&http.Cookie{Name: CookieToken, Value: "abc"})
	r.AddCookie(&http.Cookie{Name: "unrelated", Value: "x"})
	rec := httptest.NewRecorder()

	store.Logout(rec, r)

	cookies := cookieMap(rec)
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Equal(t, -1, c.MaxAge)
		assert.Empty(t, c.Value)
	}
	assert.False(t, store.IsLoggedIn())
}

func TestLogoutWithoutCookiesStillSucceeds(t *testing.T) {
	store := NewStore(false)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()

	store.Logout(rec, r)
	store.Logout(rec, r) // idempotent

	assert.Empty(t, rec.Result().Cookies())
}

func TestTokenStripsStoredQuotes(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieToken, Value: url.QueryEscape(`"dG9rZW4="`)})

	assert.Equal(t, "dG9rZW4=", Token(r))
	assert.True(t, HasCredential(r))
}

func TestTokenMissingCookieDegradesToEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, Token(r))
	assert.False(t, HasCredential(r))
}
