package handlers

import (
	"context"
	"net/http"

	"github.com/josfem004/cl-clone/internal/jwt"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=requester.go -destination=requester_mock_test.go -package=handlers

// Tokener reads the session token of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// requesterFrom identifies the user behind a request. A missing or
// invalid token yields the anonymous requester.
func requesterFrom(r *http.Request, tokener Tokener) models.Requester {
	ctx := r.Context()

	token, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return models.Anonymous
	}

	claims, err := tokener.GetClaims(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Infow("ignoring invalid session token", "err", err)
		return models.Anonymous
	}

	return models.Requester{UserID: claims.UserID}
}
