package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	// Forwarded headers are client-controlled unless a proxy rewrites them.
	if s.behindProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.limiter.middleware)

	r.Get("/health", s.healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.CreateUserHandler)
		r.Get("/users/username/{username}", s.GetUserByUsernameHandler)
		r.Get("/users/{id}", s.GetUserHandler)
		r.Patch("/users/{id}", s.UpdateUserHandler)
		r.Get("/users/{userId}/bookings", s.GetUserBookingsHandler)
		r.Get("/users/{userId}/favorites", s.GetUserFavoritesHandler)
		r.Delete("/users/{userId}/favorites", s.RemoveFavoriteHandler)

		r.Post("/bookings", s.CreateBookingHandler)
		r.Get("/bookings/{id}", s.GetBookingHandler)
		r.Patch("/bookings/{id}", s.UpdateBookingHandler)

		r.Get("/events", s.GetEventsHandler)
		r.Post("/events", s.CreateEventHandler)
		r.Get("/events/type/{eventType}", s.GetEventsByTypeHandler)

		r.Post("/favorites", s.AddFavoriteHandler)

		r.Get("/catalog/services", s.ServicesHandler)
		r.Get("/catalog/plans", s.PlansHandler)
		r.Get("/catalog/constellations", s.ConstellationsHandler)

		r.Get("/countdown", s.CountdownHandler)

		r.Get("/nasa/apod", s.AstronomyPictureHandler)
		r.Get("/nasa/events", s.UpcomingEventsHandler)
	})

	return r
}

// healthHandler provides health information.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResp, _ := json.Marshal(s.db.Health())
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonResp)
}
