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

func validateVenue(v *models.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntity)
	}
	if v.City == "" || v.State == "" {
		return fmt.Errorf("%w: city and state are required", ErrInvalidEntity)
	}
	if v.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidEntity)
	}
	return nil
}

// CreateVenue adds a new venue to the directory.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, image_link,
		                    facebook_link, website, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website, joinGenres(venue.Genres),
		venue.SeekingTalent, venue.SeekingDescription,
	).Scan(&venue.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrVenueExists
		}
		return nil, fmt.Errorf("insert venue: %w", err)
	}

	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	var (
		v      models.Venue
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, address, phone, image_link,
		       facebook_link, website, genres, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website, &genres,
		&v.SeekingTalent, &v.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}

	v.Genres = splitGenres(genres)
	return &v, nil
}

// UpdateVenue replaces every mutable field of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	var (
		v      models.Venue
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    image_link = $6, facebook_link = $7, website = $8, genres = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id, name, city, state, address, phone, image_link,
		          facebook_link, website, genres, seeking_talent, seeking_description
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website, joinGenres(venue.Genres),
		venue.SeekingTalent, venue.SeekingDescription, id,
	).Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website, &genres,
		&v.SeekingTalent, &v.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrVenueExists
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}

	v.Genres = splitGenres(genres)
	return &v, nil
}

// DeleteVenue removes a venue. Dependent shows go with it via the
// shows_venue_id_fkey cascade.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// ListVenueCounts returns every venue with the count of its shows
// starting at or after ref. Venues without shows appear with a zero
// count. Rows come back ordered by (city, state) so grouping downstream
// sees each pair contiguously.
func (s *Store) ListVenueCounts(ctx context.Context, ref time.Time) ([]models.VenueCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(sh.id) FILTER (WHERE sh.start_time >= $1) AS num_upcoming
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.city, v.state, v.id
	`, ref)
	if err != nil {
		return nil, fmt.Errorf("select venue counts: %w", err)
	}
	defer rows.Close()

	var counts []models.VenueCount
	for rows.Next() {
		var vc models.VenueCount
		if err := rows.Scan(&vc.ID, &vc.Name, &vc.City, &vc.State, &vc.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue count: %w", err)
		}
		counts = append(counts, vc)
	}

	return counts, rows.Err()
}

// SearchVenuesByName finds venues whose name contains the term,
// case-insensitively.
func (s *Store) SearchVenuesByName(ctx context.Context, term string, ref time.Time) ([]models.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name,
		       COUNT(sh.id) FILTER (WHERE sh.start_time >= $2) AS num_upcoming
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		WHERE v.name ILIKE '%' || $1 || '%'
		GROUP BY v.id
		ORDER BY v.id
	`, term, ref)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	return scanSearchHits(rows)
}

// SearchVenuesByLocation finds venues matching city and state exactly.
func (s *Store) SearchVenuesByLocation(ctx context.Context, city, state string, ref time.Time) ([]models.SearchHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name,
		       COUNT(sh.id) FILTER (WHERE sh.start_time >= $3) AS num_upcoming
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		WHERE v.city = $1 AND v.state = $2
		GROUP BY v.id
		ORDER BY v.id
	`, city, state, ref)
	if err != nil {
		return nil, fmt.Errorf("search venues by location: %w", err)
	}
	defer rows.Close()

	return scanSearchHits(rows)
}

// RecentVenues returns the most recently listed venues, newest first.
func (s *Store) RecentVenues(ctx context.Context, limit int) ([]models.NamedRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM venues
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent venues: %w", err)
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

// VenueExists reports whether a venue with the given id is present.
func (s *Store) VenueExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check venue: %w", err)
	}
	return exists, nil
}

func scanSearchHits(rows *sql.Rows) ([]models.SearchHit, error) {
	var hits []models.SearchHit
	for rows.Next() {
		var h models.SearchHit
		if err := rows.Scan(&h.ID, &h.Name, &h.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func scanNamedRefs(rows *sql.Rows) ([]models.NamedRef, error) {
	var refs []models.NamedRef
	for rows.Next() {
		var r models.NamedRef
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan ref: %w", err)
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}
