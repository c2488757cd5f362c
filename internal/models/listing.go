package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// ListingDB represents a classified ad record in the database
type ListingDB struct {
	ListingID   int64     `json:"id" db:"listing_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owner
	CityID      int64     `json:"city_id" db:"city_id"`         // City the listing belongs to
	CategoryID  int64     `json:"category_id" db:"category_id"` // Listing type
	Title       string    `json:"title" db:"title"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Photo       *string   `json:"photo,omitempty" db:"photo"` // Storage key of the photo, if any
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// IsOwnedBy reports whether the listing belongs to the given user.
func (l ListingDB) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && l.UserID == userID
}

// ListingForm holds the editable listing fields submitted on create and update.
type ListingForm struct {
	CityID      int64   `json:"city" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"gte=0,lte=9999999999.99"`
	Description string  `json:"description" validate:"required"`
	Photo       *Upload `json:"-"`
}

// Upload is a file submitted with a form.
type Upload struct {
	Filename string
	Content  io.Reader
}
