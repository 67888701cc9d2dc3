package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"showbill/internal/models"
)

func validateArtist(a *models.Artist) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntity)
	}
	if a.City == "" || a.State == "" {
		return fmt.Errorf("%w: city and state are required", ErrInvalidEntity)
	}
	return nil
}

// CreateArtist adds a new artist to the directory.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, artist.Name, artist.City, artist.State, artist.Phone, joinGenres(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrArtistExists
		}
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	var (
		a      models.Artist
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}

	a.Genres = splitGenres(genres)
	return &a, nil
}

// UpdateArtist replaces every mutable field of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	var (
		a      models.Artist
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id, name, city, state, phone, genres, image_link,
		          facebook_link, website, seeking_venue, seeking_description
	`, artist.Name, artist.City, artist.State, artist.Phone, joinGenres(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, id,
	).Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrArtistExists
		}
		return nil, fmt.Errorf("update artist: %w", err)
	}

	a.Genres = splitGenres(genres)
	return &a, nil
}

// DeleteArtist removes an artist. Dependent shows and availability
// windows go with it via their foreign-key cascades.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if rows == 0 {
		return ErrArtistNotFound
	}

	return nil
}

// ListArtists returns every artist as an id/name pair.
func (s *Store) ListArtists(ctx context.Context) ([]models.NamedRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

// SearchArtistsByName finds artists whose name contains the term,
// case-insensitively.
func (s *Store) SearchArtistsByName(ctx context.Context, term string, ref time.Time) ([]models.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name,
		       COUNT(sh.id) FILTER (WHERE sh.start_time >= $2) AS num_upcoming
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id
		WHERE a.name ILIKE '%' || $1 || '%'
		GROUP BY a.id
		ORDER BY a.id
	`, term, ref)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	return scanSearchHits(rows)
}

// SearchArtistsByLocation finds artists matching city and state exactly.
func (s *Store) SearchArtistsByLocation(ctx context.Context, city, state string, ref time.Time) ([]models.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name,
		       COUNT(sh.id) FILTER (WHERE sh.start_time >= $3) AS num_upcoming
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id
		WHERE a.city = $1 AND a.state = $2
		GROUP BY a.id
		ORDER BY a.id
	`, city, state, ref)
	if err != nil {
		return nil, fmt.Errorf("search artists by location: %w", err)
	}
	defer rows.Close()

	return scanSearchHits(rows)
}

// RecentArtists returns the most recently listed artists, newest first.
func (s *Store) RecentArtists(ctx context.Context, limit int) ([]models.NamedRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent artists: %w", err)
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

// ArtistExists reports whether an artist with the given id is present.
func (s *Store) ArtistExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check artist: %w", err)
	}
	return exists, nil
}
