package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=search.go -destination=search_mock_test.go -package=handlers

// Searcher searches listings.
type Searcher interface {
	Search(ctx context.Context, q string, categoryID *int64) ([]models.ListingDB, error)
}

// NewSearchHandler returns an HTTP handler for listing search.
// @Summary Search listings
// @Description Matches listings whose title contains every term of q, or whose description does. Case-insensitive. An empty q returns all listings.
// @Tags listings
// @Produce json
// @Param q query string false "Search terms"
// @Param category query int false "Category ID"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.ErrorResponse "Invalid category"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := query.Get("q")

		var categoryID *int64
		if raw := query.Get("category"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, r, fieldError("category", "Enter a whole number."), nil)
				return
			}
			categoryID = &id
		}

		found, err := svc.Search(r.Context(), q, categoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, models.SearchResponse{
			Query:      q,
			CategoryID: categoryID,
			Listings:   found,
		})
	}
}
