package handlers

import (
	"context"
	"net/http"

	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock_test.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, form models.LoginRequest) (string, error)
}

// SessionIssuer builds the session cookie for an issued token.
type SessionIssuer interface {
	SessionCookie(token string) *http.Cookie
}

// NewLoginFormHandler returns an HTTP handler serving the empty login form.
// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} models.LoginRequest
// @Router /login [get]
func NewLoginFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.LoginRequest{})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token. The token is also set as the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, nil)
			return
		}

		token, err := svc.Login(r.Context(), req)
		if err != nil {
			writeError(w, r, err, models.LoginRequest{Username: req.Username})
			return
		}

		http.SetCookie(w, sessions.SessionCookie(token))
		writeJSON(w, http.StatusOK, models.LoginResponse{
			Token: token,
		})
	}
}
