package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/middlewares"
	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, form models.RegisterRequest) (uuid.UUID, error)
}

// NewRegisterFormHandler returns an HTTP handler serving the empty registration form.
// @Summary Registration form
// @Tags auth
// @Produce json
// @Success 200 {object} models.RegisterRequest
// @Router /register [get]
func NewRegisterFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.RegisterRequest{})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and its profile. Username must be unique, password at least 8 characters and confirmed.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Username already exists / invalid form"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}

		userID, err := svc.Register(r.Context(), req)
		if err != nil {
			// never echo passwords
			writeError(w, r, err, models.RegisterRequest{Username: req.Username})
			return
		}

		logger.FromContext(r.Context()).Infow("user registered", "user_id", userID)
		w.Header().Set("Location", middlewares.LoginPath)
		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message:  "User registered successfully",
			Location: middlewares.LoginPath,
		})
	}
}
