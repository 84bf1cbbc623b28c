package handler

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

// offersLimit caps the budget picks section on the home page.
const offersLimit = 50

// IndexGetHandler renders the home page: lodgings and tourist activities
// side by side. A backend failure on either list surfaces on the page
// instead of blanking it.
func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Lodgings   []domain.Activity
		Activities []domain.Activity
		Offers     []domain.Activity
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	lodgings, err := h.APIClient.GetLodgings(r.Context())
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(lodgings, &templateData.Lodgings); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	activities, err := h.APIClient.GetTouristActivities(r.Context())
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(activities, &templateData.Activities); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	// budget picks; an empty section is fine when the call fails
	if offers, err := h.APIClient.GetActivitiesByPrice(r.Context(), offersLimit); err == nil {
		if err := decodePayload(offers, &templateData.Offers); err != nil {
			logger.Log.Error("decoding budget offers", "error", err)
		}
	}

	h.renderTemplate(w, "index.html", templateData)
}

// ActivityGetHandler renders the activity detail page: the activity itself,
// its rooms when it is a lodging, and its reviews with rendered text.
func (h *Handler) ActivityGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		Activity domain.Activity
		Rooms    []domain.Room
		Reviews  []domain.Review
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetActivity(r.Context(), id)
	if err != nil {
		h.redirectWithFlash(w, r, "/", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}
	if err := decodePayload(raw, &templateData.Activity); err != nil {
		h.redirectWithFlash(w, r, "/", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	if templateData.Activity.IsAlloggio {
		if rooms, err := h.APIClient.GetRoomsByLodging(r.Context(), id); err == nil {
			if err := decodePayload(rooms, &templateData.Rooms); err != nil {
				logger.Log.Error("decoding rooms", "activity", id, "error", err)
			}
		}
	}

	if reviews, err := h.APIClient.GetReviewsByActivity(r.Context(), id); err == nil {
		if err := decodePayload(reviews, &templateData.Reviews); err != nil {
			logger.Log.Error("decoding reviews", "activity", id, "error", err)
		}
		for i := range templateData.Reviews {
			templateData.Reviews[i].DescrizioneHTML = h.TextProcessor.Render(templateData.Reviews[i].Descrizione)
		}
	}

	h.renderTemplate(w, "attivita.html", templateData)
}

// ManagerActivitiesGetHandler is the manager's dashboard: the activities
// they own.
func (h *Handler) ManagerActivitiesGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		Activities []domain.Activity
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetManagerActivities(r)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(raw, &templateData.Activities); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	h.renderTemplate(w, "gestione_attivita.html", templateData)
}

// activityFormFields copies the activity form into the param set the
// backend expects. Eco-value checkboxes ride along on create.
func activityFormFields(r *http.Request) url.Values {
	fields := url.Values{}
	for _, name := range []string{
		"nome", "descrizione", "indirizzo", "latitudine", "longitudine",
		"prezzo", "isAlloggio", "media",
	} {
		fields.Set(name, r.FormValue(name))
	}
	return fields
}

func (h *Handler) ActivityCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	if _, err := h.APIClient.CreateActivity(r, activityFormFields(r)); err != nil {
		logger.Log.Error("creating activity via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Attività creata con successo!")
}

func (h *Handler) ActivityUpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := h.APIClient.UpdateActivity(r, id, activityFormFields(r)); err != nil {
		logger.Log.Error("updating activity via API", "activity", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Attività aggiornata con successo!")
}

func (h *Handler) ActivityDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/gestione-attivita"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.APIClient.DeleteActivity(r, id); err != nil {
		logger.Log.Error("deleting activity via API", "activity", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Attività eliminata con successo!")
}
