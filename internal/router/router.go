package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greentrails-dev/greentrails/internal/handler"
	"github.com/greentrails-dev/greentrails/internal/middleware"
	"github.com/greentrails-dev/greentrails/internal/middleware/metrics"
	"github.com/greentrails-dev/greentrails/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeadersWithCSP(deps.Public.SecureCookies, ""))
	r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))
	r.Use(middleware.ValidateCSRFToken())

	h := deps.Handler

	// Public routes
	r.Get("/favicon.ico", handler.FaviconHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	r.Get("/", h.IndexGetHandler)
	r.Get("/login", h.LoginGetHandler)
	r.Post("/login", h.LoginPostHandler)
	r.Get("/register", h.RegisterGetHandler)
	r.Post("/register", h.RegisterPostHandler)
	r.Post("/register/v1", h.RegisterV1PostHandler)

	r.Get("/attivita/{id}", h.ActivityGetHandler)
	r.Get("/camere/{id}", h.RoomGetHandler)
	r.Get("/ricerca", h.SearchGetHandler)
	r.Get("/media/{media}", h.MediaListGetHandler)
	r.Get("/media/{media}/{filename}", h.FileGetHandler)

	// Routes behind the credential guard
	r.Group(func(r chi.Router) {
		r.Use(middleware.NeedCredential(deps.Public.SecureCookies))

		r.Get("/logout", h.LogoutHandler)
		r.Get("/area-riservata", h.AreaRiservataGetHandler)

		r.Get("/questionario", h.QuestionnaireGetHandler)
		r.Post("/questionario", h.QuestionnairePostHandler)

		r.Get("/itinerari", h.ItinerariesGetHandler)
		r.Post("/itinerari", h.ItineraryCreatePostHandler)
		r.Post("/itinerari/genera", h.ItineraryGeneratePostHandler)
		r.Get("/itinerari/{id}", h.ItineraryGetHandler)
		r.Post("/itinerari/{id}/seleziona", h.ItinerarySelectPostHandler)
		r.Post("/itinerari/{id}/elimina", h.ItineraryDeletePostHandler)

		r.Get("/prenotazioni", h.BookingsGetHandler)
		r.Post("/prenotazioni-alloggio", h.LodgingBookingPostHandler)
		r.Get("/prenotazioni-alloggio/{id}", h.LodgingBookingGetHandler)
		r.Post("/prenotazioni-alloggio/{id}/conferma", h.LodgingBookingConfirmPostHandler)
		r.Post("/prenotazioni-alloggio/{id}/elimina", h.LodgingBookingDeletePostHandler)
		r.Get("/camere/{id}/disponibilita", h.RoomAvailabilityGetHandler)

		r.Post("/prenotazioni-attivita", h.ActivityBookingPostHandler)
		r.Post("/prenotazioni-attivita/{id}/conferma", h.ActivityBookingConfirmPostHandler)
		r.Post("/prenotazioni-attivita/{id}/elimina", h.ActivityBookingDeletePostHandler)
		r.Get("/attivita/{id}/disponibilita", h.ActivityAvailabilityGetHandler)

		r.Post("/recensioni", h.ReviewCreatePostHandler)

		r.Get("/segnalazioni", h.ComplaintsGetHandler)
		r.Post("/segnalazioni", h.ComplaintCreatePostHandler)

		// Manager area
		r.Get("/gestione-attivita", h.ManagerActivitiesGetHandler)
		r.Post("/gestione-attivita", h.ActivityCreatePostHandler)
		r.Post("/gestione-attivita/{id}", h.ActivityUpdatePostHandler)
		r.Post("/gestione-attivita/{id}/elimina", h.ActivityDeletePostHandler)

		r.Post("/camere", h.RoomCreatePostHandler)
		r.Post("/camere/{id}/elimina", h.RoomDeletePostHandler)

		r.Get("/categorie/{id}", h.CategoryGetHandler)
		r.Post("/categorie/{id}", h.CategoryAddPostHandler)
		r.Post("/categorie/{id}/rimuovi", h.CategoryRemovePostHandler)

		r.Post("/valori", h.EcoValuesCreatePostHandler)
		r.Post("/valori/{id}", h.EcoValuesUpdatePostHandler)
	})

	return r
}
