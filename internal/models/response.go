package models

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid form
	Error string `json:"error"`

	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`

	// The submitted form, echoed back on validation errors
	Form any `json:"form,omitempty"`
}

// RedirectResponse is returned by write operations; Location is also sent as a header.
// swagger:model RedirectResponse
type RedirectResponse struct {
	// example: /listing/1
	Location string `json:"location"`
}

// IndexResponse is the landing page: top-level categories and cities.
// Profile is set for authenticated requesters, LoginForm for anonymous ones.
// swagger:model IndexResponse
type IndexResponse struct {
	Categories []CategoryDB  `json:"categories"`
	Cities     []CityDB      `json:"cities"`
	City       *CityDB       `json:"city,omitempty"`
	Profile    *ProfileDB    `json:"profile,omitempty"`
	LoginForm  *LoginRequest `json:"login_form,omitempty"`
}

// CityCategoryResponse lists the listings of one category in one city.
// swagger:model CityCategoryResponse
type CityCategoryResponse struct {
	City     CityDB      `json:"city"`
	Category CategoryDB  `json:"category"`
	Listings []ListingDB `json:"listings"`
}

// CategoryResponse lists the listings of one category in all cities.
// swagger:model CategoryResponse
type CategoryResponse struct {
	Category      CategoryDB   `json:"category"`
	Subcategories []CategoryDB `json:"subcategories"`
	Listings      []ListingDB  `json:"listings"`
}

// ListingResponse is the listing detail view.
// swagger:model ListingResponse
type ListingResponse struct {
	Listing ListingDB  `json:"listing"`
	Profile *ProfileDB `json:"profile,omitempty"`
}

// ProfileResponse is the requester's profile with their listings.
// swagger:model ProfileResponse
type ProfileResponse struct {
	Profile      ProfileDB   `json:"profile"`
	UserListings []ListingDB `json:"user_listings"`
}

// SearchResponse holds search results.
// swagger:model SearchResponse
type SearchResponse struct {
	Query      string      `json:"q"`
	CategoryID *int64      `json:"category,omitempty"`
	Listings   []ListingDB `json:"listings"`
}
