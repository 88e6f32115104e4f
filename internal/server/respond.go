package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"astro-booking/internal/database"
	"astro-booking/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody reads a JSON body into dst, refusing unknown fields, and runs
// the struct's validation tags. The returned error is safe to show the client.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := models.Validate(dst); err != nil {
		return errors.New(models.Describe(err))
	}
	return nil
}

func badRequest(w http.ResponseWriter, msg string, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Details: err.Error()})
}

// pathID parses a numeric path parameter. Malformed ids are answered with 400
// by the caller instead of reaching the store.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// storeFailure maps store errors onto HTTP statuses. Anything that is not a
// known domain error is logged and reported as a 500.
func storeFailure(w http.ResponseWriter, err error, notFound, invalid string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, database.ErrValidation):
		badRequest(w, invalid, err)
	default:
		log.Printf("Store error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
