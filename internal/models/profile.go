package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMethod is the way a user prefers to be contacted about listings.
type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
	ContactText  ContactMethod = "text"
)

// ProfileDB represents a user profile record (one-to-one with UserDB)
type ProfileDB struct {
	ProfileID        int64         `json:"id" db:"profile_id"`                       // Primary key
	UserID           uuid.UUID     `json:"user_id" db:"user_id"`                     // Owning user, unique
	CityID           *int64        `json:"city_id" db:"city_id"`                     // Preferred city, nullable
	PreferredContact ContactMethod `json:"preferred_contact" db:"preferred_contact"` // Preferred contact method
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// ProfileForm holds the editable profile fields.
type ProfileForm struct {
	CityID           *int64        `json:"city" validate:"omitempty,gt=0"`
	PreferredContact ContactMethod `json:"preferred_contact" validate:"required,oneof=email phone text"`
}
