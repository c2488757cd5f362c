package models

// Listing event types published to Kafka.
const (
	ListingCreated = "listing.created"
	ListingUpdated = "listing.updated"
	ListingDeleted = "listing.deleted"
)

// ListingEvent describes a change to a listing.
type ListingEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	ListingID int64  `json:"listing_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}
