package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"astro-booking/internal/database"
	"astro-booking/internal/models"
)

// GetEventsHandler handles GET /api/events?limit=N. Without a limit the store default applies.
func (s *Server) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	limit := database.DefaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "Invalid limit", err)
			return
		}
		if n < 1 {
			badRequest(w, "Invalid limit", errors.New("limit must be positive"))
			return
		}
		limit = n
	}

	events, err := s.db.GetEvents(r.Context(), limit)
	if err != nil {
		storeFailure(w, err, "Events not found", "Invalid limit")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewEvent
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, "Invalid event data", err)
		return
	}

	event, err := s.db.CreateEvent(r.Context(), input)
	if err != nil {
		storeFailure(w, err, "Event not found", "Invalid event data")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) GetEventsByTypeHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.db.GetEventsByType(r.Context(), chi.URLParam(r, "eventType"))
	if err != nil {
		storeFailure(w, err, "Events not found", "Invalid event type")
		return
	}
	writeJSON(w, http.StatusOK, events)
}
