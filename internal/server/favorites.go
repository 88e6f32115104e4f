package server

import (
	"net/http"

	"astro-booking/internal/models"
)

func (s *Server) GetUserFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		badRequest(w, "Invalid user id", err)
		return
	}

	favorites, err := s.db.GetUserFavorites(r.Context(), userID)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewFavorite
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, "Invalid favorite data", err)
		return
	}

	favorite, err := s.db.AddFavorite(r.Context(), input)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid favorite data")
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

// RemoveFavoriteHandler handles DELETE /api/users/{userId}/favorites with a
// {"itemType", "itemId"} body. A key that matches nothing is a 404.
func (s *Server) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		badRequest(w, "Invalid user id", err)
		return
	}

	var key models.FavoriteKey
	if err := decodeBody(r, &key); err != nil {
		badRequest(w, "itemType and itemId are required", err)
		return
	}

	removed, err := s.db.RemoveFavorite(r.Context(), userID, key.ItemType, key.ItemID)
	if err != nil {
		storeFailure(w, err, "Favorite not found", "Invalid favorite data")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Favorite not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
