package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/domain"
	"github.com/greentrails-dev/greentrails/internal/logger"
)

// BookingsGetHandler lists the visitor's lodging and activity bookings on
// one page.
func (h *Handler) BookingsGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
		LodgingBookings  []domain.LodgingBooking
		ActivityBookings []domain.ActivityBooking
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	lodging, err := h.APIClient.GetLodgingBookings(r)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(lodging, &templateData.LodgingBookings); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	activity, err := h.APIClient.GetActivityBookings(r)
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else if err := decodePayload(activity, &templateData.ActivityBookings); err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	}

	h.renderTemplate(w, "prenotazioni.html", templateData)
}

// LodgingBookingGetHandler renders a single lodging booking, for the
// confirmation step.
func (h *Handler) LodgingBookingGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		Booking domain.LodgingBooking
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)

	raw, err := h.APIClient.GetLodgingBooking(r, id)
	if err != nil {
		h.redirectWithFlash(w, r, "/prenotazioni", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}
	if err := decodePayload(raw, &templateData.Booking); err != nil {
		h.redirectWithFlash(w, r, "/prenotazioni", flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.renderTemplate(w, "prenotazione_alloggio.html", templateData)
}

// RoomAvailabilityGetHandler checks a room's availability for a date range
// and renders the raw answer next to the booking form.
func (h *Handler) RoomAvailabilityGetHandler(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		RoomID       int64
		Availability json.RawMessage
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)
	templateData.RoomID = roomID

	raw, err := h.APIClient.CheckRoomAvailability(r, roomID, r.URL.Query().Get("dataInizio"), r.URL.Query().Get("dataFine"))
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else {
		templateData.Availability = raw
	}

	h.renderTemplate(w, "disponibilita_camera.html", templateData)
}

func (h *Handler) LodgingBookingPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	_, err := h.APIClient.BookLodging(r,
		formInt64(r, "idItinerario"),
		formInt64(r, "idCamera"),
		formInt(r, "numAdulti"),
		formInt(r, "numBambini"),
		formInt(r, "numCamere"),
		r.FormValue("dataInizio"),
		r.FormValue("dataFine"),
	)
	if err != nil {
		logger.Log.Error("booking lodging via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione alloggio effettuata!")
}

// LodgingBookingConfirmPostHandler finalizes a booking in a single request;
// the backend either confirms everything or nothing.
func (h *Handler) LodgingBookingConfirmPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, err := h.APIClient.ConfirmLodgingBooking(r, id,
		formInt(r, "numAdulti"),
		formInt(r, "numBambini"),
		formInt(r, "numCamere"),
		r.FormValue("dataInizio"),
		r.FormValue("dataFine"),
	)
	if err != nil {
		logger.Log.Error("confirming lodging booking via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione confermata!")
}

func (h *Handler) LodgingBookingDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.APIClient.DeleteLodgingBooking(r, id); err != nil {
		logger.Log.Error("deleting lodging booking via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione eliminata!")
}

func (h *Handler) ActivityAvailabilityGetHandler(w http.ResponseWriter, r *http.Request) {
	activityID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var templateData struct {
		CommonTemplateData
		ActivityID   int64
		Availability json.RawMessage
	}
	templateData.CommonTemplateData = h.InitCommonTemplateData(w, r)
	templateData.ActivityID = activityID

	raw, err := h.APIClient.CheckActivityAvailability(r, activityID, r.URL.Query().Get("dataInizio"))
	if err != nil {
		templateData.Error = template.HTMLEscapeString(err.Error())
	} else {
		templateData.Availability = raw
	}

	h.renderTemplate(w, "disponibilita_attivita.html", templateData)
}

func (h *Handler) ActivityBookingPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	_, err := h.APIClient.BookActivity(r,
		formInt64(r, "idItinerario"),
		formInt64(r, "idAttivita"),
		formInt(r, "numAdulti"),
		formInt(r, "numBambini"),
		r.FormValue("dataInizio"),
		r.FormValue("dataFine"),
	)
	if err != nil {
		logger.Log.Error("booking activity via API", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione attività effettuata!")
}

func (h *Handler) ActivityBookingConfirmPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, err := h.APIClient.ConfirmActivityBooking(r, id,
		formInt(r, "numAdulti"),
		formInt(r, "numBambini"),
		r.FormValue("dataInizio"),
		r.FormValue("dataFine"),
	)
	if err != nil {
		logger.Log.Error("confirming activity booking via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione confermata!")
}

func (h *Handler) ActivityBookingDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/prenotazioni"

	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.APIClient.DeleteActivityBooking(r, id); err != nil {
		logger.Log.Error("deleting activity booking via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Prenotazione eliminata!")
}
