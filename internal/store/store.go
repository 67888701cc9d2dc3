package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrShowNotFound   = errors.New("show not found")
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrVenueExists and ErrArtistExists signal a name uniqueness
	// violation. Names are unique globally, not per city/state.
	ErrVenueExists  = errors.New("venue name already taken")
	ErrArtistExists = errors.New("artist name already taken")

	// ErrInvalidEntity flags a create/update payload missing required fields.
	ErrInvalidEntity = errors.New("invalid entity")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// foreignKeyConstraint returns the violated constraint name for a
// foreign-key violation, or "" for any other error.
func foreignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return pgErr.ConstraintName
	}
	return ""
}

// Genre tags live as a comma-joined string in a single column. The
// join/split never leaves this package; everything above the store works
// with []string.
func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
