package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/models"
	"github.com/josfem004/cl-clone/internal/search"
)

const listingColumns = `listing_id, user_id, city_id, category_id, title, price, description, photo, created_at`

// ListingReadRepository handles listing read operations
type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// GetByID returns the listing, or nil if it does not exist.
func (r *ListingReadRepository) GetByID(ctx context.Context, listingID int64) (*models.ListingDB, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	var listing models.ListingDB
	err := r.db.GetContext(ctx, &listing, query, listingID)
	logQuery(ctx, query, []any{listingID}, listing.ListingID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListByCityAndCategory returns the listings of one city in one category.
func (r *ListingReadRepository) ListByCityAndCategory(ctx context.Context, cityID, categoryID int64) ([]models.ListingDB, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE city_id = $1 AND category_id = $2
		ORDER BY listing_id`

	return r.list(ctx, query, cityID, categoryID)
}

// ListByCategory returns the listings of a category in every city.
func (r *ListingReadRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE category_id = $1
		ORDER BY listing_id`

	return r.list(ctx, query, categoryID)
}

// ListByUser returns the listings owned by a user.
func (r *ListingReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ListingDB, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE user_id = $1
		ORDER BY listing_id`

	return r.list(ctx, query, userID)
}

// Search returns the listings matching every term in the title or every term
// in the description, optionally restricted to a category. No terms means no
// text filtering.
func (r *ListingReadRepository) Search(ctx context.Context, categoryID *int64, terms []string) ([]models.ListingDB, error) {
	var (
		conds []string
		args  []any
	)

	if categoryID != nil {
		args = append(args, *categoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if clause, termArgs := search.Filter(terms, len(args)+1); clause != "" {
		conds = append(conds, clause)
		args = append(args, termArgs...)
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY listing_id"

	return r.list(ctx, query, args...)
}

func (r *ListingReadRepository) list(ctx context.Context, query string, args ...any) ([]models.ListingDB, error) {
	listings := []models.ListingDB{}
	err := r.db.SelectContext(ctx, &listings, query, args...)
	logQuery(ctx, query, args, len(listings), err)

	return listings, err
}

// ListingWriteRepository handles listing write operations.
// Updates and deletes are scoped to the owner: a row owned by someone else is
// never touched and the call reports sql.ErrNoRows.
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListingWriteRepository(db *sqlx.DB, txGetter TxGetter) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the listing and fills in its id and creation time.
func (r *ListingWriteRepository) Save(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		INSERT INTO listings (user_id, city_id, category_id, title, price, description, photo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING listing_id, created_at
	`
	args := []any{
		listing.UserID, listing.CityID, listing.CategoryID,
		listing.Title, listing.Price, listing.Description, listing.Photo,
	}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&listing.ListingID, &listing.CreatedAt)
	logQuery(ctx, query, args, listing.ListingID, err)

	return err
}

// Update overwrites the editable fields of a listing owned by listing.UserID.
func (r *ListingWriteRepository) Update(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		UPDATE listings
		SET city_id = $3, title = $4, price = $5, description = $6, photo = $7
		WHERE listing_id = $1 AND user_id = $2
	`
	args := []any{
		listing.ListingID, listing.UserID,
		listing.CityID, listing.Title, listing.Price, listing.Description, listing.Photo,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	affected := rowsAffected(res)
	logQuery(ctx, query, args, affected, err)

	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a listing owned by userID.
func (r *ListingWriteRepository) Delete(ctx context.Context, listingID int64, userID uuid.UUID) error {
	const query = `DELETE FROM listings WHERE listing_id = $1 AND user_id = $2`
	args := []any{listingID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	affected := rowsAffected(res)
	logQuery(ctx, query, args, affected, err)

	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
