package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("a user with that username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (uuid.UUID, error)
}

// ProfileCreator creates the profile that goes with a new user.
type ProfileCreator interface {
	Create(ctx context.Context, userID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	profiles ProfileCreator
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, profiles ProfileCreator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		profiles: profiles,
		jwt:      jwt,
	}
}

// Register registers a new user together with an empty profile.
// Both rows are written through the request transaction.
func (svc *AuthService) Register(ctx context.Context, form models.RegisterRequest) (uuid.UUID, error) {
	if verr := validateForm(form); verr != nil {
		return uuid.Nil, verr
	}

	user, err := svc.reader.GetByUsername(ctx, form.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.FromContext(ctx).Infow("user already exists", "username", form.Username)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, form.Username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return uuid.Nil, ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	if err := svc.profiles.Create(ctx, userID); err != nil {
		logger.FromContext(ctx).Errorw("failed to create profile", "user_id", userID, "err", err)
		return uuid.Nil, fmt.Errorf("create profile: %w", err)
	}

	return userID, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, form models.LoginRequest) (string, error) {
	if verr := validateForm(form); verr != nil {
		return "", verr
	}

	user, err := svc.reader.GetByUsername(ctx, form.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.FromContext(ctx).Infow("user does not exist", "username", form.Username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		logger.FromContext(ctx).Infow("invalid credentials", "username", form.Username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
