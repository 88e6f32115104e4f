package models

import "time"

// Membership tiers offered in the catalog.
const (
	PlanStargazer = "stargazer"
	PlanExplorer  = "explorer"
	PlanCosmicPro = "cosmic_pro"
)

// User is a site account. The password is stored as submitted and never
// serialized back out.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	Email          *string   `json:"email"`
	FirstName      *string   `json:"firstName"`
	LastName       *string   `json:"lastName"`
	MembershipPlan string    `json:"membershipPlan"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser is the signup payload.
type NewUser struct {
	Username       string  `json:"username" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	Email          *string `json:"email" validate:"omitempty,email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	MembershipPlan string  `json:"membershipPlan" validate:"omitempty,oneof=stargazer explorer cosmic_pro"`
}

// UserPatch carries the fields of a partial profile update. Nil means "leave unchanged".
type UserPatch struct {
	Username       *string `json:"username" validate:"omitempty,min=1"`
	Password       *string `json:"password" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	MembershipPlan *string `json:"membershipPlan" validate:"omitempty,oneof=stargazer explorer cosmic_pro"`
}
