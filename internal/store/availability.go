package store

import (
	"context"
	"fmt"

	"showbill/internal/models"
)

// AddWindow persists a weekly availability window for an artist. Range
// and day-of-week checks happen in the availability service before the
// window reaches this point.
func (s *Store) AddWindow(ctx context.Context, window *models.AvailableWindow) (*models.AvailableWindow, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO available_times (artist_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, window.ArtistID, window.DayOfWeek, window.StartTime, window.EndTime).Scan(&window.ID)

	if err != nil {
		if foreignKeyConstraint(err) == "available_times_artist_id_fkey" {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("insert availability window: %w", err)
	}

	return window, nil
}

// DeleteWindow removes an availability window.
func (s *Store) DeleteWindow(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM available_times WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete availability window: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete availability window: %w", err)
	}
	if rows == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// ListWindowsByArtist returns an artist's windows in insertion order.
func (s *Store) ListWindowsByArtist(ctx context.Context, artistID int64) ([]models.AvailableWindow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, artist_id, day_of_week, start_time, end_time
		FROM available_times
		WHERE artist_id = $1
		ORDER BY id
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select availability windows: %w", err)
	}
	defer rows.Close()

	var windows []models.AvailableWindow
	for rows.Next() {
		var w models.AvailableWindow
		if err := rows.Scan(&w.ID, &w.ArtistID, &w.DayOfWeek, &w.StartTime, &w.EndTime); err != nil {
			return nil, fmt.Errorf("scan availability window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, rows.Err()
}
