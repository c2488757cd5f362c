package handlers

import (
	"context"
	"net/http"

	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=category.go -destination=category_mock_test.go -package=handlers

// CategoryResolver resolves categories and their children.
type CategoryResolver interface {
	Category(ctx context.Context, categoryID int64) (*models.CategoryDB, error)
	Subcategories(ctx context.Context, categoryID int64) ([]models.CategoryDB, error)
}

// CategoryLister lists the listings of a category.
type CategoryLister interface {
	ListByCityAndCategory(ctx context.Context, cityID, categoryID int64) ([]models.ListingDB, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error)
}

// NewCityCategoryHandler returns an HTTP handler listing a category in one city.
// @Summary Listings of a category in a city
// @Tags listings
// @Produce json
// @Param cityId path int true "City ID"
// @Param categoryId path int true "Category ID"
// @Success 200 {object} models.CityCategoryResponse
// @Failure 404 {object} models.ErrorResponse "City or category not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /city/{cityId}/category/{categoryId} [get]
func NewCityCategoryHandler(cities CityResolver, categories CategoryResolver, listings CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cityID, err := pathID(r, "cityId")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		categoryID, err := pathID(r, "categoryId")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		city, err := cities.City(ctx, cityID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		category, err := categories.Category(ctx, categoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		found, err := listings.ListByCityAndCategory(ctx, city.CityID, category.CategoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, models.CityCategoryResponse{
			City:     *city,
			Category: *category,
			Listings: found,
		})
	}
}

// NewCategoryHandler returns an HTTP handler listing a category in all cities.
// @Summary Listings of a category
// @Tags listings
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} models.CategoryResponse
// @Failure 404 {object} models.ErrorResponse "Category not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /category/{categoryId} [get]
func NewCategoryHandler(categories CategoryResolver, listings CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		categoryID, err := pathID(r, "categoryId")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		category, err := categories.Category(ctx, categoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		children, err := categories.Subcategories(ctx, category.CategoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		if children == nil {
			children = []models.CategoryDB{}
		}

		found, err := listings.ListByCategory(ctx, category.CategoryID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, models.CategoryResponse{
			Category:      *category,
			Subcategories: children,
			Listings:      found,
		})
	}
}
