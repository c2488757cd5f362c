package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/models"
)

// CategoryReadRepository reads the two-level listing type tree.
// Children are always resolved by query on parent_id.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// ListTopLevel returns the categories without a parent.
func (r *CategoryReadRepository) ListTopLevel(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, parent_id
		FROM listing_types
		WHERE parent_id IS NULL
		ORDER BY category_id
	`

	categories := []models.CategoryDB{}
	err := r.db.SelectContext(ctx, &categories, query)
	logQuery(ctx, query, nil, len(categories), err)

	return categories, err
}

// ListChildren returns the subcategories of a category.
func (r *CategoryReadRepository) ListChildren(ctx context.Context, parentID int64) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, parent_id
		FROM listing_types
		WHERE parent_id = $1
		ORDER BY category_id
	`

	categories := []models.CategoryDB{}
	err := r.db.SelectContext(ctx, &categories, query, parentID)
	logQuery(ctx, query, []any{parentID}, len(categories), err)

	return categories, err
}

// GetByID returns the category, or nil if it does not exist.
func (r *CategoryReadRepository) GetByID(ctx context.Context, categoryID int64) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, parent_id
		FROM listing_types
		WHERE category_id = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, categoryID)
	logQuery(ctx, query, []any{categoryID}, category.CategoryID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
