package postgres

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
)

// DefaultDSN matches the service in docker/docker-compose.postgres.yml
const DefaultDSN = "host=localhost port=5432 user=football password=football123 dbname=football_data sslmode=disable"

// ErrSeasonNotFound is returned when no season id exists for a league and season year.
var ErrSeasonNotFound = errors.New("season id not found for league and season")

// Store reads KPI series from the per-season match tables
type Store struct {
	db *sql.DB
}

// New wraps an already opened database handle
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
