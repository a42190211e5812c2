// Package repository implements the PostgreSQL storage for users,
// inscriptions, metric events and purchases.
package repository

import (
	"context"
	"errors"
	"fmt"

	// Registers the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Sentinel errors surfaced by the storage layer. Services map these to
// the HTTP error taxonomy.
var (
	// ErrEmailTaken is returned when an insert loses the race at the
	// unique index on usuarios.correo.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned by lookups of a missing user.
	ErrUserNotFound = errors.New("user not found")
)

// Storage wraps the PostgreSQL connection pool.
type Storage struct {
	DB *sql.DB
}

// New opens the connection pool and verifies connectivity.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
