package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/middlewares"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/services"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// redirect answers a successful write with the page to show next.
func redirect(w http.ResponseWriter, status int, location string) {
	w.Header().Set("Location", location)
	writeJSON(w, status, models.RedirectResponse{Location: location})
}

// writeError maps a service error to a response. form is echoed back on
// validation errors and may be nil.
func writeError(w http.ResponseWriter, r *http.Request, err error, form any) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:  "Invalid form",
			Fields: verr.Fields,
			Form:   form,
		})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrUnauthenticated):
		w.Header().Set("Location", middlewares.LoginPath)
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:  "Username already exists",
			Fields: map[string]string{"username": "A user with that username already exists."},
			Form:   form,
		})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserDoesNotExist):
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, services.ErrProfileMissing):
		logger.FromContext(r.Context()).Errorw("data integrity error", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

// pathID reads a positive integer URL parameter. Anything else does not
// name an entity and is reported as ErrNotFound.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, services.ErrNotFound
	}
	return id, nil
}

// decodeJSON decodes the request body into dst, reporting a malformed body
// as a form level validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &services.ValidationError{Fields: map[string]string{"form": "invalid request body"}}
	}
	return nil
}
