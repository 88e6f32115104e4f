package server

import (
	"errors"
	"net/http"
	"strconv"

	"astro-booking/internal/catalog"
	"astro-booking/internal/sky"
)

// Constellation map viewport used when the client does not pass one; the
// coordinates then read as percentages.
const defaultViewport = 100.0

func (s *Server) ServicesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Services())
}

func (s *Server) PlansHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Plans())
}

// ConstellationsHandler returns every constellation projected onto a
// width x height viewport.
func (s *Server) ConstellationsHandler(w http.ResponseWriter, r *http.Request) {
	width, err := viewportParam(r, "width")
	if err != nil {
		badRequest(w, "Invalid width", err)
		return
	}
	height, err := viewportParam(r, "height")
	if err != nil {
		badRequest(w, "Invalid height", err)
		return
	}

	constellations := catalog.Constellations()
	views := make([]sky.ConstellationView, 0, len(constellations))
	for _, c := range constellations {
		views = append(views, sky.Layout(c, width, height))
	}
	writeJSON(w, http.StatusOK, views)
}

func viewportParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultViewport, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errors.New(name + " must be positive")
	}
	return v, nil
}
