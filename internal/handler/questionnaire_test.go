package handler

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/credentials"
)

func newQuestionnaireHandler(t *testing.T, backend http.Handler) (*Handler, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		backend.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	registry := config.NewRegistry()
	registry.Set(server.URL)

	h := &Handler{
		Public:    config.Public{},
		APIClient: apiclient.New(registry),
	}
	return h, &hits
}

func postQuestionnaire(h *Handler, answers url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/questionario", strings.NewReader(answers.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{
		Name:  credentials.CookieToken,
		Value: url.QueryEscape(`"dG9rZW4="`),
	})

	w := httptest.NewRecorder()
	h.QuestionnairePostHandler(w, req)
	return w
}

func flashValue(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name && c.MaxAge > 0 {
			decoded, err := base64.StdEncoding.DecodeString(c.Value)
			require.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}

func fullAnswers() url.Values {
	return url.Values{
		"viaggioPreferito":     {"Mare"},
		"alloggioPreferito":    {"Hotel"},
		"attivitaPreferita":    {"Escursioni"},
		"preferenzaAlimentare": {"Vegano"},
		"animaleDomestico":     {"No"},
		"budgetPreferito":      {"Medio"},
		"souvenir":             {"Sì"},
		"stagioniPreferite":    {"Estate"},
	}
}

func TestQuestionnairePostComplete(t *testing.T) {
	h, hits := newQuestionnaireHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	w := postQuestionnaire(h, fullAnswers())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/area-riservata", w.Header().Get("Location"))
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "Preferenze inviate", flashValue(t, w, "flash_success"))
}

func TestQuestionnairePostOneMissing(t *testing.T) {
	h, hits := newQuestionnaireHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	answers := fullAnswers()
	answers.Set("preferenzaAlimentare", "")

	w := postQuestionnaire(h, answers)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	// validation fails locally; nothing reaches the backend
	assert.Equal(t, int32(0), hits.Load())
	assert.Contains(t, flashValue(t, w, "flash_error"), "terza domanda!")
}

func TestQuestionnairePostManyMissing(t *testing.T) {
	h, hits := newQuestionnaireHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	w := postQuestionnaire(h, url.Values{})

	assert.Equal(t, int32(0), hits.Load())
	assert.Contains(t, flashValue(t, w, "flash_error"), "più domande!")
}

func TestQuestionnairePostBackendFailure(t *testing.T) {
	h, hits := newQuestionnaireHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "errore interno", http.StatusInternalServerError)
	}))

	w := postQuestionnaire(h, fullAnswers())

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, "Preferenze non inviate", flashValue(t, w, "flash_error"))
}
