package availability

import (
	"context"
	"fmt"
	"time"

	"showbill/internal/models"
	"showbill/internal/store"
)

// Store defines persistence operations for availability windows.
type Store interface {
	ArtistExists(ctx context.Context, id int64) (bool, error)
	AddWindow(ctx context.Context, window *models.AvailableWindow) (*models.AvailableWindow, error)
	DeleteWindow(ctx context.Context, id int64) error
	ListWindowsByArtist(ctx context.Context, artistID int64) ([]models.AvailableWindow, error)
}

// Service manages the weekly availability windows an artist declares.
// Windows may overlap freely; no merging or conflict detection happens
// here, and bookings are never checked against them.
type Service interface {
	Add(ctx context.Context, window *models.AvailableWindow) (*models.AvailableWindow, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context, artistID int64) ([]models.AvailableWindow, error)
}

type service struct {
	store Store
}

// New constructs an availability Service backed by the provided Store.
func New(s Store) Service {
	return &service{store: s}
}

const clockLayout = "15:04"

func (s *service) Add(ctx context.Context, window *models.AvailableWindow) (*models.AvailableWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if verrs := validateWindow(window); len(verrs) > 0 {
		return nil, verrs
	}

	exists, err := s.store.ArtistExists(ctx, window.ArtistID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrArtistNotFound
	}

	return s.store.AddWindow(ctx, window)
}

// validateWindow rejects out-of-range days and inverted time ranges
// before anything reaches the store. A zero-length window (end equal to
// start) is accepted.
func validateWindow(w *models.AvailableWindow) models.ValidationErrors {
	var verrs models.ValidationErrors

	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		verrs = append(verrs, models.FieldError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Monday) and 6 (Sunday)",
		})
	}

	start, err := time.Parse(clockLayout, w.StartTime)
	if err != nil {
		verrs = append(verrs, models.FieldError{
			Field:   "start_time",
			Message: fmt.Sprintf("%q is not a valid HH:MM time", w.StartTime),
		})
	}

	end, err := time.Parse(clockLayout, w.EndTime)
	if err != nil {
		verrs = append(verrs, models.FieldError{
			Field:   "end_time",
			Message: fmt.Sprintf("%q is not a valid HH:MM time", w.EndTime),
		})
	}

	if len(verrs) == 0 && end.Before(start) {
		verrs = append(verrs, models.FieldError{
			Field:   "end_time",
			Message: "end_time must not precede start_time",
		})
	}

	return verrs
}

func (s *service) Remove(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteWindow(ctx, id)
}

func (s *service) List(ctx context.Context, artistID int64) ([]models.AvailableWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListWindowsByArtist(ctx, artistID)
}
