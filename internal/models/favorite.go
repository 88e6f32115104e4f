package models

import "time"

// Favorite points at a catalog item by (ItemType, ItemID). ItemID is free-form:
// a constellation name, an event id or a service id.
type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ItemType  string    `json:"itemType"`
	ItemID    string    `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewFavorite struct {
	UserID   int    `json:"userId" validate:"required,gt=0"`
	ItemType string `json:"itemType" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
}

// FavoriteKey identifies the favorite to remove for a user.
type FavoriteKey struct {
	ItemType string `json:"itemType" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
}
