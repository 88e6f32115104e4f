package models

import "time"

// Booking lifecycle. Nothing transitions automatically; every change is an explicit update.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	ServiceType     string    `json:"serviceType"`
	BookingDate     time.Time `json:"bookingDate"`
	Duration        int       `json:"duration"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"specialRequests"`
	TotalAmount     *int      `json:"totalAmount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewBooking struct {
	UserID          int       `json:"userId" validate:"required,gt=0"`
	ServiceType     string    `json:"serviceType" validate:"required"`
	BookingDate     time.Time `json:"bookingDate" validate:"required"`
	Duration        int       `json:"duration" validate:"required,gt=0"` // minutes
	Status          string    `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests *string   `json:"specialRequests"`
	TotalAmount     *int      `json:"totalAmount" validate:"omitempty,gte=0"` // cents
}

type BookingPatch struct {
	UserID          *int       `json:"userId" validate:"omitempty,gt=0"`
	ServiceType     *string    `json:"serviceType" validate:"omitempty,min=1"`
	BookingDate     *time.Time `json:"bookingDate"`
	Duration        *int       `json:"duration" validate:"omitempty,gt=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests *string    `json:"specialRequests"`
	TotalAmount     *int       `json:"totalAmount" validate:"omitempty,gte=0"`
}
