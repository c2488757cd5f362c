package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock_test.go -package=services

// ProfileReader reads profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter updates profiles.
type ProfileWriter interface {
	Update(ctx context.Context, userID uuid.UUID, form models.ProfileForm) error
}

// UserListingReader lists the listings owned by a user.
type UserListingReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error)
}

// ProfileService works on the requester's own profile.
type ProfileService struct {
	reader   ProfileReader
	writer   ProfileWriter
	cities   CityReader
	listings UserListingReader
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ProfileReader, writer ProfileWriter, cities CityReader, listings UserListingReader) *ProfileService {
	return &ProfileService{
		reader:   reader,
		writer:   writer,
		cities:   cities,
		listings: listings,
	}
}

// Get returns the requester's profile. Every user has one, so a missing
// row for an authenticated requester is reported as ErrProfileMissing.
func (s *ProfileService) Get(ctx context.Context, requester models.Requester) (*models.ProfileDB, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	profile, err := s.reader.GetByUserID(ctx, requester.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get profile", "user_id", requester.UserID, "error", err)
		return nil, err
	}
	if profile == nil {
		logger.FromContext(ctx).Errorw("profile missing", "user_id", requester.UserID)
		return nil, ErrProfileMissing
	}
	return profile, nil
}

// Optional is Get for views that also serve anonymous requesters: it returns nil for them.
func (s *ProfileService) Optional(ctx context.Context, requester models.Requester) (*models.ProfileDB, error) {
	if !requester.IsAuthenticated() {
		return nil, nil
	}
	return s.Get(ctx, requester)
}

// View returns the requester's profile with the listings they own.
func (s *ProfileService) View(ctx context.Context, requester models.Requester) (*models.ProfileResponse, error) {
	profile, err := s.Get(ctx, requester)
	if err != nil {
		return nil, err
	}

	listings, err := s.listings.ListByUser(ctx, requester.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list user listings", "user_id", requester.UserID, "error", err)
		return nil, err
	}
	if listings == nil {
		listings = []models.ListingDB{}
	}

	return &models.ProfileResponse{Profile: *profile, UserListings: listings}, nil
}

// Update changes the requester's preferred city and contact method.
func (s *ProfileService) Update(ctx context.Context, requester models.Requester, form models.ProfileForm) error {
	if !requester.IsAuthenticated() {
		return ErrUnauthenticated
	}

	verr := validateForm(form)
	if form.CityID != nil && (verr == nil || verr.Fields["city"] == "") {
		city, err := s.cities.GetByID(ctx, *form.CityID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to get city", "city_id", *form.CityID, "error", err)
			return err
		}
		if city == nil {
			if verr == nil {
				verr = &ValidationError{}
			}
			verr.add("city", invalidChoice)
		}
	}
	if verr != nil {
		return verr
	}

	if err := s.writer.Update(ctx, requester.UserID, form); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Errorw("profile missing", "user_id", requester.UserID)
			return ErrProfileMissing
		}
		logger.FromContext(ctx).Errorw("failed to update profile", "user_id", requester.UserID, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("profile updated", "user_id", requester.UserID)
	return nil
}
