package server

import (
	"net/http"

	"astro-booking/internal/models"
)

// CreateBookingHandler handles booking creation. Two identical submissions
// create two bookings.
func (s *Server) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewBooking
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, "Invalid booking data", err)
		return
	}

	booking, err := s.db.CreateBooking(r.Context(), input)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid booking data")
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) GetUserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		badRequest(w, "Invalid user id", err)
		return
	}

	bookings, err := s.db.GetUserBookings(r.Context(), userID)
	if err != nil {
		storeFailure(w, err, "User not found", "Invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) GetBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "Invalid booking id", err)
		return
	}

	booking, err := s.db.GetBooking(r.Context(), id)
	if err != nil {
		storeFailure(w, err, "Booking not found", "Invalid booking id")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// UpdateBookingHandler applies a partial update, e.g. {"status":"cancelled"}.
func (s *Server) UpdateBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "Invalid booking id", err)
		return
	}

	var patch models.BookingPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "Invalid update data", err)
		return
	}

	booking, err := s.db.UpdateBooking(r.Context(), id, patch)
	if err != nil {
		storeFailure(w, err, "Booking not found", "Invalid update data")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
