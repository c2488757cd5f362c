package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/models"
)

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile of a user, or nil if the user has none.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, user_id, city_id, preferred_contact, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)
	logQuery(ctx, query, []any{userID}, profile.ProfileID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the default profile of a freshly registered user.
func (r *ProfileWriteRepository) Create(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO profiles (user_id, preferred_contact, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`
	args := []any{userID, models.ContactEmail}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// Update overwrites the editable fields of a user's profile.
// It returns sql.ErrNoRows when the user has no profile.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID uuid.UUID, form models.ProfileForm) error {
	const query = `
		UPDATE profiles
		SET city_id = $2, preferred_contact = $3, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, form.CityID, form.PreferredContact}

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

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
