package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=listing.go -destination=listing_mock_test.go -package=handlers

// ListingGetter returns a single listing.
type ListingGetter interface {
	Get(ctx context.Context, listingID int64) (*models.ListingDB, error)
}

// PhotoOpener opens the stored photo of a listing.
type PhotoOpener interface {
	Photo(ctx context.Context, listingID int64) (io.ReadCloser, string, error)
}

// ListingCreator creates listings.
type ListingCreator interface {
	Create(ctx context.Context, requester models.Requester, categoryID int64, form models.ListingForm) (*models.ListingDB, error)
}

// ListingUpdater updates listings owned by the requester.
type ListingUpdater interface {
	Update(ctx context.Context, requester models.Requester, listingID int64, form models.ListingForm) (*models.ListingDB, error)
}

// ListingDeleter deletes listings owned by the requester.
type ListingDeleter interface {
	Delete(ctx context.Context, requester models.Requester, listingID int64) error
}

func listingPath(listingID int64) string {
	return fmt.Sprintf("/listing/%d", listingID)
}

// NewListingHandler returns an HTTP handler for the listing detail page.
// @Summary Listing detail
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.ListingResponse
// @Failure 404 {object} models.ErrorResponse "Listing not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /listing/{id} [get]
func NewListingHandler(listings ListingGetter, profiles ProfileFinder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		listing, err := listings.Get(r.Context(), listingID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		profile, err := profiles.Optional(r.Context(), requesterFrom(r, tokener))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, models.ListingResponse{Listing: *listing, Profile: profile})
	}
}

// NewListingPhotoHandler returns an HTTP handler streaming a listing photo.
// @Summary Listing photo
// @Tags listings
// @Produce image/jpeg,image/png,image/gif,image/webp
// @Param id path int true "Listing ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Listing or photo not found"
// @Router /listing/{id}/photo [get]
func NewListingPhotoHandler(photos PhotoOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		rc, contentType, err := photos.Photo(r.Context(), listingID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			logger.FromContext(r.Context()).Warnw("failed to stream photo", "listing_id", listingID, "err", err)
		}
	}
}

// NewListingCreateHandler returns an HTTP handler creating a listing in a category.
// @Summary Create listing
// @Description Creates a listing owned by the signed in user. Accepts multipart or urlencoded forms with an optional photo.
// @Tags listings
// @Accept multipart/form-data
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param city formData int true "City ID"
// @Param title formData string true "Title"
// @Param price formData number true "Price"
// @Param description formData string true "Description"
// @Param photo formData file false "Photo"
// @Success 201 {object} models.RedirectResponse "Listing created"
// @Failure 400 {object} models.ErrorResponse "Invalid form"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "Category not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /category/{categoryId}/listing/new [post]
func NewListingCreateHandler(svc ListingCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := pathID(r, "categoryId")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		form, echo, file, err := parseListingForm(w, r)
		if err != nil {
			writeError(w, r, err, echo)
			return
		}
		if file != nil {
			defer file.Close()
		}

		listing, err := svc.Create(r.Context(), requesterFrom(r, tokener), categoryID, form)
		if err != nil {
			writeError(w, r, err, echo)
			return
		}

		redirect(w, http.StatusCreated, listingPath(listing.ListingID))
	}
}

// NewListingUpdateHandler returns an HTTP handler editing a listing.
// @Summary Update listing
// @Description Updates a listing owned by the signed in user. Without a photo the current one is kept.
// @Tags listings
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Listing ID"
// @Param city formData int true "City ID"
// @Param title formData string true "Title"
// @Param price formData number true "Price"
// @Param description formData string true "Description"
// @Param photo formData file false "Photo"
// @Success 200 {object} models.RedirectResponse "Listing updated"
// @Failure 400 {object} models.ErrorResponse "Invalid form"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "Listing not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listing/{id}/edit [post]
func NewListingUpdateHandler(svc ListingUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		form, echo, file, err := parseListingForm(w, r)
		if err != nil {
			writeError(w, r, err, echo)
			return
		}
		if file != nil {
			defer file.Close()
		}

		listing, err := svc.Update(r.Context(), requesterFrom(r, tokener), listingID, form)
		if err != nil {
			writeError(w, r, err, echo)
			return
		}

		redirect(w, http.StatusOK, listingPath(listing.ListingID))
	}
}

// NewListingDeleteHandler returns an HTTP handler deleting a listing.
// @Summary Delete listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.RedirectResponse "Listing deleted"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "Listing not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listing/{id}/delete [post]
func NewListingDeleteHandler(svc ListingDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		if err := svc.Delete(r.Context(), requesterFrom(r, tokener), listingID); err != nil {
			writeError(w, r, err, nil)
			return
		}

		redirect(w, http.StatusOK, profilePath)
	}
}
