// Package storage implements the engine's repository interfaces on
// Postgres via database/sql and lib/pq. Row structs mirror the table
// layouts; converters translate between rows and domain models.
package storage

import (
	"database/sql"
)

// Store is the Postgres-backed data access layer. One Store serves all
// repository interfaces the generation engine depends on.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}
