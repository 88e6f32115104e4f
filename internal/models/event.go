package models

import (
	"encoding/json"
	"time"
)

// Event types used by the feed importer and the fallback schedule.
const (
	EventEclipse      = "eclipse"
	EventMeteorShower = "meteor_shower"
	EventPlanetary    = "planetary"
	EventAsteroid     = "asteroid"
)

type Event struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	EventDate   time.Time       `json:"eventDate"`
	EventType   string          `json:"eventType"`
	IsNasaData  bool            `json:"isNasaData"`
	Metadata    json.RawMessage `json:"metadata"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type NewEvent struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	EventDate   time.Time       `json:"eventDate" validate:"required"`
	EventType   string          `json:"eventType" validate:"required"`
	IsNasaData  bool            `json:"isNasaData"`
	Metadata    json.RawMessage `json:"metadata"`
}
