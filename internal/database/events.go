package database

import (
	"context"
	"fmt"

	"astro-booking/internal/models"
)

// DefaultEventLimit caps GetEvents when the caller passes no positive limit.
const DefaultEventLimit = 50

const eventColumns = `id, title, description, event_date, event_type, is_nasa_data, metadata, created_at`

func scanEvent(row scanner) (*models.Event, error) {
	var (
		e        models.Event
		metadata []byte
	)
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&e.EventType,
		&e.IsNasaData,
		&metadata,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		e.Metadata = metadata
	}
	return &e, nil
}

func (s *service) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *service) GetEvents(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	events, err := s.queryEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *service) CreateEvent(ctx context.Context, event models.NewEvent) (*models.Event, error) {
	var metadata []byte
	if len(event.Metadata) > 0 {
		metadata = []byte(event.Metadata)
	}

	query := `
		INSERT INTO events (title, description, event_date, event_type, is_nasa_data, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + eventColumns
	e, err := scanEvent(s.db.QueryRowContext(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.EventType,
		event.IsNasaData,
		metadata,
	))
	if err != nil {
		return nil, classify(err)
	}
	return e, nil
}

func (s *service) GetEventsByType(ctx context.Context, eventType string) ([]models.Event, error) {
	events, err := s.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE event_type = $1`, eventType)
	if err != nil {
		return nil, fmt.Errorf("list %s events: %w", eventType, err)
	}
	return events, nil
}
