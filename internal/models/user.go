package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Requester is the identity behind an incoming request.
// The zero value is an anonymous requester.
type Requester struct {
	UserID uuid.UUID
}

// Anonymous is the requester of a request without a valid session.
var Anonymous = Requester{}

// IsAuthenticated reports whether the requester carries a user identity.
func (r Requester) IsAuthenticated() bool {
	return r.UserID != uuid.Nil
}
