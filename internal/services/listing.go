package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/search"
	"github.com/josfem004/cl-clone/internal/storage"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=listing.go -destination=listing_mock_test.go -package=services

// ListingReader defines read operations for listings.
type ListingReader interface {
	GetByID(ctx context.Context, listingID int64) (*models.ListingDB, error)
	ListByCityAndCategory(ctx context.Context, cityID, categoryID int64) ([]models.ListingDB, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error)
	Search(ctx context.Context, categoryID *int64, terms []string) ([]models.ListingDB, error)
}

// ListingWriter defines write operations for listings. Update and Delete
// are scoped to the owner and return sql.ErrNoRows when nothing matched.
type ListingWriter interface {
	Save(ctx context.Context, listing *models.ListingDB) error
	Update(ctx context.Context, listing *models.ListingDB) error
	Delete(ctx context.Context, listingID int64, userID uuid.UUID) error
}

// PhotoStorage stores listing photos.
type PhotoStorage interface {
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TxHook schedules fn for when the transaction carried by ctx settles.
type TxHook func(ctx context.Context, fn func(ctx context.Context))

// ListingService handles listings and publishes their change events.
type ListingService struct {
	reader        ListingReader
	writer        ListingWriter
	cities        CityReader
	categories    CategoryReader
	photos        PhotoStorage
	kafkaWriter   KafkaWriter
	afterCommit   TxHook
	afterRollback TxHook
}

// NewListingService creates a new ListingService. kafkaWriter may be nil.
// Photo cleanup and events wait for afterCommit; photos uploaded for a write
// that is later rolled back are removed through afterRollback. A nil
// afterCommit runs its work immediately and a nil afterRollback drops it.
func NewListingService(
	reader ListingReader,
	writer ListingWriter,
	cities CityReader,
	categories CategoryReader,
	photos PhotoStorage,
	kafkaWriter KafkaWriter,
	afterCommit TxHook,
	afterRollback TxHook,
) *ListingService {
	return &ListingService{
		reader:        reader,
		writer:        writer,
		cities:        cities,
		categories:    categories,
		photos:        photos,
		kafkaWriter:   kafkaWriter,
		afterCommit:   afterCommit,
		afterRollback: afterRollback,
	}
}

func (s *ListingService) onCommit(ctx context.Context, fn func(ctx context.Context)) {
	if s.afterCommit == nil {
		fn(ctx)
		return
	}
	s.afterCommit(ctx, fn)
}

func (s *ListingService) onRollback(ctx context.Context, fn func(ctx context.Context)) {
	if s.afterRollback != nil {
		s.afterRollback(ctx, fn)
	}
}

// publishEvent publishes a listing event to Kafka.
func (s *ListingService) publishEvent(ctx context.Context, eventType string, listing *models.ListingDB) {
	event := models.ListingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ListingID: listing.ListingID,
		UserID:    listing.UserID.String(),
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal listing event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish listing event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Listing event published to Kafka", "event_id", event.EventID, "type", eventType, "listing_id", listing.ListingID)
	}
}

// Get returns a listing by id.
func (s *ListingService) Get(ctx context.Context, listingID int64) (*models.ListingDB, error) {
	listing, err := s.reader.GetByID(ctx, listingID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get listing", "listing_id", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	return listing, nil
}

// ListByCityAndCategory returns the listings of a category in a city.
func (s *ListingService) ListByCityAndCategory(ctx context.Context, cityID, categoryID int64) ([]models.ListingDB, error) {
	listings, err := s.reader.ListByCityAndCategory(ctx, cityID, categoryID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list listings", "city_id", cityID, "category_id", categoryID, "error", err)
		return nil, err
	}
	return nonNil(listings), nil
}

// ListByCategory returns the listings of a category in all cities.
func (s *ListingService) ListByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error) {
	listings, err := s.reader.ListByCategory(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list listings", "category_id", categoryID, "error", err)
		return nil, err
	}
	return nonNil(listings), nil
}

// Search returns the listings matching every whitespace separated term of
// q in the title, or every term in the description. An empty query
// matches everything.
func (s *ListingService) Search(ctx context.Context, q string, categoryID *int64) ([]models.ListingDB, error) {
	if !utf8.ValidString(q) {
		return nil, fieldError("q", invalidText)
	}
	terms := search.Terms(q)
	listings, err := s.reader.Search(ctx, categoryID, terms)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to search listings", "q", q, "error", err)
		return nil, err
	}
	return nonNil(listings), nil
}

// Create stores a new listing owned by the requester in the given category.
func (s *ListingService) Create(ctx context.Context, requester models.Requester, categoryID int64, form models.ListingForm) (*models.ListingDB, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get category", "category_id", categoryID, "error", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	form = normalize(form)
	if err := s.validate(ctx, form); err != nil {
		return nil, err
	}

	photo, err := s.upload(ctx, form.Photo)
	if err != nil {
		return nil, err
	}

	listing := &models.ListingDB{
		UserID:      requester.UserID,
		CityID:      form.CityID,
		CategoryID:  category.CategoryID,
		Title:       form.Title,
		Price:       form.Price,
		Description: form.Description,
		Photo:       photo,
	}
	if err := s.writer.Save(ctx, listing); err != nil {
		logger.FromContext(ctx).Errorw("failed to save listing", "user_id", requester.UserID, "error", err)
		s.removePhoto(ctx, photo)
		return nil, err
	}

	s.onRollback(ctx, func(ctx context.Context) { s.removePhoto(ctx, photo) })
	s.onCommit(ctx, func(ctx context.Context) { s.publishEvent(ctx, models.ListingCreated, listing) })
	return listing, nil
}

// Update changes a listing owned by the requester. Listings of other users
// are reported as not found and left untouched. Without a new photo the
// old one is kept.
func (s *ListingService) Update(ctx context.Context, requester models.Requester, listingID int64, form models.ListingForm) (*models.ListingDB, error) {
	existing, err := s.owned(ctx, requester, listingID)
	if err != nil {
		return nil, err
	}

	form = normalize(form)
	if err := s.validate(ctx, form); err != nil {
		return nil, err
	}

	photo, err := s.upload(ctx, form.Photo)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.CityID = form.CityID
	updated.Title = form.Title
	updated.Price = form.Price
	updated.Description = form.Description
	if photo != nil {
		updated.Photo = photo
	}

	if err := s.writer.Update(ctx, &updated); err != nil {
		s.removePhoto(ctx, photo)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.FromContext(ctx).Errorw("failed to update listing", "listing_id", listingID, "error", err)
		return nil, err
	}

	s.onRollback(ctx, func(ctx context.Context) { s.removePhoto(ctx, photo) })
	s.onCommit(ctx, func(ctx context.Context) {
		if photo != nil {
			s.removePhoto(ctx, existing.Photo)
		}
		s.publishEvent(ctx, models.ListingUpdated, &updated)
	})
	return &updated, nil
}

// Delete removes a listing owned by the requester together with its photo.
func (s *ListingService) Delete(ctx context.Context, requester models.Requester, listingID int64) error {
	existing, err := s.owned(ctx, requester, listingID)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, listingID, requester.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.FromContext(ctx).Errorw("failed to delete listing", "listing_id", listingID, "error", err)
		return err
	}

	s.onCommit(ctx, func(ctx context.Context) {
		s.removePhoto(ctx, existing.Photo)
		s.publishEvent(ctx, models.ListingDeleted, existing)
	})
	return nil
}

// Photo opens the stored photo of a listing and returns it with its content type.
func (s *ListingService) Photo(ctx context.Context, listingID int64) (io.ReadCloser, string, error) {
	listing, err := s.Get(ctx, listingID)
	if err != nil {
		return nil, "", err
	}
	if listing.Photo == nil {
		return nil, "", ErrNotFound
	}

	rc, err := s.photos.Download(ctx, *listing.Photo)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.FromContext(ctx).Warnw("listing photo missing from storage", "listing_id", listingID, "key", *listing.Photo)
			return nil, "", ErrNotFound
		}
		logger.FromContext(ctx).Errorw("failed to download photo", "listing_id", listingID, "error", err)
		return nil, "", err
	}
	return rc, storage.ContentType(*listing.Photo), nil
}

// owned resolves a listing that belongs to the requester.
func (s *ListingService) owned(ctx context.Context, requester models.Requester, listingID int64) (*models.ListingDB, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	listing, err := s.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(requester.UserID) {
		logger.FromContext(ctx).Infow("listing not owned by requester", "listing_id", listingID, "user_id", requester.UserID)
		return nil, ErrNotFound
	}
	return listing, nil
}

// validate checks the form fields and that the chosen city exists.
func (s *ListingService) validate(ctx context.Context, form models.ListingForm) error {
	verr := validateForm(form)
	if form.Photo != nil && !storage.IsImage(form.Photo.Filename) {
		if verr == nil {
			verr = &ValidationError{}
		}
		verr.add("photo", invalidImage)
	}
	if verr != nil && verr.Fields["city"] != "" {
		return verr
	}

	city, err := s.cities.GetByID(ctx, form.CityID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get city", "city_id", form.CityID, "error", err)
		return err
	}
	if city == nil {
		if verr == nil {
			verr = &ValidationError{}
		}
		verr.add("city", invalidChoice)
	}

	if verr != nil {
		return verr
	}
	return nil
}

func (s *ListingService) upload(ctx context.Context, photo *models.Upload) (*string, error) {
	if photo == nil {
		return nil, nil
	}

	key, err := s.photos.Upload(ctx, uuid.New(), photo.Filename, photo.Content)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to upload photo", "filename", photo.Filename, "error", err)
		return nil, err
	}
	return &key, nil
}

// removePhoto deletes a stored photo, logging failures.
func (s *ListingService) removePhoto(ctx context.Context, key *string) {
	if key == nil {
		return
	}
	if err := s.photos.Delete(ctx, *key); err != nil {
		logger.FromContext(ctx).Warnw("failed to delete photo", "key", *key, "error", err)
	}
}

func normalize(form models.ListingForm) models.ListingForm {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	return form
}

func nonNil(listings []models.ListingDB) []models.ListingDB {
	if listings == nil {
		return []models.ListingDB{}
	}
	return listings
}
