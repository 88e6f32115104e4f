package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"astro-booking/internal/models"
)

const bookingColumns = `id, user_id, service_type, booking_date, duration, status, special_requests, total_amount, created_at`

func scanBooking(row scanner) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceType,
		&b.BookingDate,
		&b.Duration,
		&b.Status,
		&b.SpecialRequests,
		&b.TotalAmount,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking inserts a booking. Identical submissions produce separate rows.
func (s *service) CreateBooking(ctx context.Context, booking models.NewBooking) (*models.Booking, error) {
	status := booking.Status
	if status == "" {
		status = models.StatusConfirmed
	}

	query := `
		INSERT INTO bookings (user_id, service_type, booking_date, duration, status, special_requests, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns
	b, err := scanBooking(s.db.QueryRowContext(ctx, query,
		booking.UserID,
		booking.ServiceType,
		booking.BookingDate,
		booking.Duration,
		status,
		booking.SpecialRequests,
		booking.TotalAmount,
	))
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// GetUserBookings returns every booking of userID in no particular order.
func (s *service) GetUserBookings(ctx context.Context, userID int) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for user %d: %w", userID, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *service) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	b, err := scanBooking(s.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return b, nil
}

func (s *service) UpdateBooking(ctx context.Context, id int, patch models.BookingPatch) (*models.Booking, error) {
	var set setList
	if patch.UserID != nil {
		set.add("user_id", *patch.UserID)
	}
	if patch.ServiceType != nil {
		set.add("service_type", *patch.ServiceType)
	}
	if patch.BookingDate != nil {
		set.add("booking_date", *patch.BookingDate)
	}
	if patch.Duration != nil {
		set.add("duration", *patch.Duration)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.SpecialRequests != nil {
		set.add("special_requests", *patch.SpecialRequests)
	}
	if patch.TotalAmount != nil {
		set.add("total_amount", *patch.TotalAmount)
	}
	if set.empty() {
		return nil, &ValidationError{Reason: "no fields to update"}
	}
	set.args = append(set.args, id)

	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set.cols, ", "), len(set.args), bookingColumns)
	b, err := scanBooking(s.db.QueryRowContext(ctx, query, set.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}
