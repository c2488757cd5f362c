package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/models"
)

// CityReadRepository reads city reference data.
type CityReadRepository struct {
	db *sqlx.DB
}

func NewCityReadRepository(db *sqlx.DB) *CityReadRepository {
	return &CityReadRepository{db: db}
}

// List returns every city ordered by name.
func (r *CityReadRepository) List(ctx context.Context) ([]models.CityDB, error) {
	const query = `SELECT city_id, name FROM cities ORDER BY name`

	cities := []models.CityDB{}
	err := r.db.SelectContext(ctx, &cities, query)
	logQuery(ctx, query, nil, len(cities), err)

	return cities, err
}

// GetByID returns the city, or nil if it does not exist.
func (r *CityReadRepository) GetByID(ctx context.Context, cityID int64) (*models.CityDB, error) {
	const query = `SELECT city_id, name FROM cities WHERE city_id = $1`

	var city models.CityDB
	err := r.db.GetContext(ctx, &city, query, cityID)
	logQuery(ctx, query, []any{cityID}, city, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}
