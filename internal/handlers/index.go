package handlers

import (
	"context"
	"net/http"

	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=index.go -destination=index_mock_test.go -package=handlers

// ReferenceLister lists the reference data shown on landing pages.
type ReferenceLister interface {
	Cities(ctx context.Context) ([]models.CityDB, error)
	TopLevelCategories(ctx context.Context) ([]models.CategoryDB, error)
}

// CityResolver resolves a city by id.
type CityResolver interface {
	City(ctx context.Context, cityID int64) (*models.CityDB, error)
}

// ProfileFinder returns the requester's profile, or nil for anonymous requesters.
type ProfileFinder interface {
	Optional(ctx context.Context, requester models.Requester) (*models.ProfileDB, error)
}

// NewIndexHandler returns an HTTP handler for the landing page.
// @Summary Landing page
// @Description Lists top-level categories and cities. Signed in users get their profile, others an empty login form.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.IndexResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router / [get]
func NewIndexHandler(catalog ReferenceLister, profiles ProfileFinder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := landing(r, catalog, profiles, tokener)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCityHandler returns an HTTP handler for the landing page of one city.
// @Summary City landing page
// @Description Same as the landing page, plus the selected city.
// @Tags catalog
// @Produce json
// @Param cityId path int true "City ID"
// @Success 200 {object} models.IndexResponse
// @Failure 404 {object} models.ErrorResponse "City not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /city/{cityId} [get]
func NewCityHandler(catalog ReferenceLister, cities CityResolver, profiles ProfileFinder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cityID, err := pathID(r, "cityId")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		city, err := cities.City(r.Context(), cityID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		resp, err := landing(r, catalog, profiles, tokener)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		resp.City = city

		writeJSON(w, http.StatusOK, resp)
	}
}

func landing(r *http.Request, catalog ReferenceLister, profiles ProfileFinder, tokener Tokener) (*models.IndexResponse, error) {
	ctx := r.Context()

	categories, err := catalog.TopLevelCategories(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := catalog.Cities(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.IndexResponse{Categories: categories, Cities: cities}

	profile, err := profiles.Optional(ctx, requesterFrom(r, tokener))
	if err != nil {
		return nil, err
	}
	if profile != nil {
		resp.Profile = profile
	} else {
		resp.LoginForm = &models.LoginRequest{}
	}
	return resp, nil
}
