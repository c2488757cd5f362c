package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const (
	citiesKey             = "reference:cities"
	topLevelCategoriesKey = "reference:categories:top"
)

// ReferenceCacheRepository caches city and category reference data in Redis.
type ReferenceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewReferenceCacheRepository creates a new repository instance with the given TTL
func NewReferenceCacheRepository(client *redis.Client, expiration time.Duration) *ReferenceCacheRepository {
	return &ReferenceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetCities returns the cached city list.
func (r *ReferenceCacheRepository) GetCities(ctx context.Context) ([]models.CityDB, error) {
	var cities []models.CityDB
	if err := r.get(ctx, citiesKey, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// SetCities caches the city list.
func (r *ReferenceCacheRepository) SetCities(ctx context.Context, cities []models.CityDB) error {
	return r.set(ctx, citiesKey, cities)
}

// GetTopLevelCategories returns the cached top-level categories.
func (r *ReferenceCacheRepository) GetTopLevelCategories(ctx context.Context) ([]models.CategoryDB, error) {
	var categories []models.CategoryDB
	if err := r.get(ctx, topLevelCategoriesKey, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SetTopLevelCategories caches the top-level categories.
func (r *ReferenceCacheRepository) SetTopLevelCategories(ctx context.Context, categories []models.CategoryDB) error {
	return r.set(ctx, topLevelCategoriesKey, categories)
}

func (r *ReferenceCacheRepository) get(ctx context.Context, key string, dst any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	logger.FromContext(ctx).Infow("cache get",
		"key", key,
		"size", len(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(val, dst)
}

func (r *ReferenceCacheRepository) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Infow("cache set",
		"key", key,
		"size", len(data),
		"result", "ok",
		"error", err,
	)
	return err
}
