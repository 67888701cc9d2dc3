package store

import (
	"context"
	"fmt"

	"showbill/internal/models"
)

// CreateShow persists a booked show. The foreign keys are the last line
// of defense: if either endpoint disappeared between the booking
// validation and this insert, the violation maps back to the matching
// not-found error.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)

	if err != nil {
		switch foreignKeyConstraint(err) {
		case "shows_venue_id_fkey":
			return nil, ErrVenueNotFound
		case "shows_artist_id_fkey":
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("insert show: %w", err)
	}

	return show, nil
}

// DeleteShow removes a single show.
func (s *Store) DeleteShow(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	if rows == 0 {
		return ErrShowNotFound
	}

	return nil
}

// ListShows returns every show with both endpoints resolved.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sh.id, sh.start_time, v.id, v.name, a.id, a.name, a.image_link
		FROM shows sh
		INNER JOIN venues v ON v.id = sh.venue_id
		INNER JOIN artists a ON a.id = sh.artist_id
		ORDER BY sh.start_time
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var listings []models.ShowListing
	for rows.Next() {
		var l models.ShowListing
		if err := rows.Scan(&l.ID, &l.StartTime, &l.VenueID, &l.VenueName,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// ListShowsByVenue returns every show at a venue with artist details,
// ordered by start time.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sh.start_time, a.id, a.name, a.image_link
		FROM shows sh
		INNER JOIN artists a ON a.id = sh.artist_id
		WHERE sh.venue_id = $1
		ORDER BY sh.start_time
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("select shows by venue: %w", err)
	}
	defer rows.Close()

	var shows []models.VenueShow
	for rows.Next() {
		var vs models.VenueShow
		if err := rows.Scan(&vs.StartTime, &vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		shows = append(shows, vs)
	}

	return shows, rows.Err()
}

// ListShowsByArtist returns every show of an artist with venue details,
// ordered by start time.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sh.start_time, v.id, v.name, v.image_link
		FROM shows sh
		INNER JOIN venues v ON v.id = sh.venue_id
		WHERE sh.artist_id = $1
		ORDER BY sh.start_time
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select shows by artist: %w", err)
	}
	defer rows.Close()

	var shows []models.ArtistShow
	for rows.Next() {
		var as models.ArtistShow
		if err := rows.Scan(&as.StartTime, &as.VenueID, &as.VenueName, &as.VenueImageLink); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		shows = append(shows, as)
	}

	return shows, rows.Err()
}
