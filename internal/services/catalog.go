package services

import (
	"context"
	"errors"

	"github.com/josfem004/cl-clone/internal/logger"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/repositories"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=services

// CityReader reads the city reference data.
type CityReader interface {
	List(ctx context.Context) ([]models.CityDB, error)
	GetByID(ctx context.Context, cityID int64) (*models.CityDB, error)
}

// CategoryReader reads the category tree.
type CategoryReader interface {
	ListTopLevel(ctx context.Context) ([]models.CategoryDB, error)
	ListChildren(ctx context.Context, parentID int64) ([]models.CategoryDB, error)
	GetByID(ctx context.Context, categoryID int64) (*models.CategoryDB, error)
}

// ReferenceCache caches the reference lists shown on the landing page.
type ReferenceCache interface {
	GetCities(ctx context.Context) ([]models.CityDB, error)
	SetCities(ctx context.Context, cities []models.CityDB) error
	GetTopLevelCategories(ctx context.Context) ([]models.CategoryDB, error)
	SetTopLevelCategories(ctx context.Context, categories []models.CategoryDB) error
}

// CatalogService serves cities and categories. The cache is optional.
type CatalogService struct {
	cities     CityReader
	categories CategoryReader
	cache      ReferenceCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(cities CityReader, categories CategoryReader, cache ReferenceCache) *CatalogService {
	return &CatalogService{
		cities:     cities,
		categories: categories,
		cache:      cache,
	}
}

// Cities returns all cities, from the cache when possible.
func (s *CatalogService) Cities(ctx context.Context) ([]models.CityDB, error) {
	if s.cache != nil {
		cities, err := s.cache.GetCities(ctx)
		if err == nil {
			return cities, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.FromContext(ctx).Warnw("reference cache read failed", "key", "cities", "error", err)
		}
	}

	cities, err := s.cities.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list cities", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCities(ctx, cities); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache cities", "error", err)
		}
	}
	return cities, nil
}

// TopLevelCategories returns the categories without a parent, from the cache when possible.
func (s *CatalogService) TopLevelCategories(ctx context.Context) ([]models.CategoryDB, error) {
	if s.cache != nil {
		categories, err := s.cache.GetTopLevelCategories(ctx)
		if err == nil {
			return categories, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.FromContext(ctx).Warnw("reference cache read failed", "key", "categories", "error", err)
		}
	}

	categories, err := s.categories.ListTopLevel(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list top-level categories", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTopLevelCategories(ctx, categories); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache categories", "error", err)
		}
	}
	return categories, nil
}

// City resolves a city by id.
func (s *CatalogService) City(ctx context.Context, cityID int64) (*models.CityDB, error) {
	city, err := s.cities.GetByID(ctx, cityID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get city", "city_id", cityID, "error", err)
		return nil, err
	}
	if city == nil {
		return nil, ErrNotFound
	}
	return city, nil
}

// Category resolves a category by id.
func (s *CatalogService) Category(ctx context.Context, categoryID int64) (*models.CategoryDB, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get category", "category_id", categoryID, "error", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Subcategories returns the direct children of a category.
func (s *CatalogService) Subcategories(ctx context.Context, categoryID int64) ([]models.CategoryDB, error) {
	children, err := s.categories.ListChildren(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list subcategories", "category_id", categoryID, "error", err)
		return nil, err
	}
	return children, nil
}
