package handlers

import (
	"context"
	"net/http"

	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock_test.go -package=handlers

const (
	profilePath = "/profile"
	indexPath   = "/"
)

// ProfileViewer returns the requester's profile page.
type ProfileViewer interface {
	View(ctx context.Context, requester models.Requester) (*models.ProfileResponse, error)
}

// ProfileUpdater updates the requester's profile.
type ProfileUpdater interface {
	Update(ctx context.Context, requester models.Requester, form models.ProfileForm) error
}

// NewProfileHandler returns an HTTP handler for the requester's profile.
// @Summary Own profile
// @Description Returns the signed in user's profile and the listings they own.
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [get]
func NewProfileHandler(svc ProfileViewer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.View(r.Context(), requesterFrom(r, tokener))
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewProfileUpdateHandler returns an HTTP handler updating the requester's profile.
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.ProfileForm true "Profile form"
// @Success 200 {object} models.RedirectResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid form"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [post]
func NewProfileUpdateHandler(svc ProfileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form models.ProfileForm
		if err := decodeJSON(r, &form); err != nil {
			writeError(w, r, err, nil)
			return
		}

		if err := svc.Update(r.Context(), requesterFrom(r, tokener), form); err != nil {
			writeError(w, r, err, form)
			return
		}

		redirect(w, http.StatusOK, indexPath)
	}
}
