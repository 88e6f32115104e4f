package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"astro-booking/internal/models"
)

// GetUserHandler handles GET /api/users/{id}.
func (s *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "Invalid user id", err)
		return
	}

	user, err := s.db.GetUser(r.Context(), id)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) GetUserByUsernameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.db.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid username")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateUserHandler handles signup. A taken username is a 400, like any other bad payload.
func (s *Server) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewUser
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, "Invalid user data", err)
		return
	}

	user, err := s.db.CreateUser(r.Context(), input)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid user data")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "Invalid user id", err)
		return
	}

	var patch models.UserPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "Invalid update data", err)
		return
	}

	user, err := s.db.UpdateUser(r.Context(), id, patch)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid update data")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
