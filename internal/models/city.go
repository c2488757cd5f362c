package models

// CityDB represents a city. Cities are reference data and never change through the API.
type CityDB struct {
	CityID int64  `json:"id" db:"city_id"`
	Name   string `json:"name" db:"name"`
}
