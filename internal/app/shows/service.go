package shows

import (
	"context"
	"fmt"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for bookings.
type Store interface {
	VenueExists(ctx context.Context, id int64) (bool, error)
	ArtistExists(ctx context.Context, id int64) (bool, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
	DeleteShow(ctx context.Context, id int64) error
	ListShows(ctx context.Context) ([]models.ShowListing, error)
}

// Service coordinates show booking and listing.
type Service interface {
	// Book validates that both endpoints exist and persists the show.
	// When references are missing it returns a models.ValidationErrors
	// naming every failed reference, not just the first.
	Book(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.ShowListing, error)
}

type service struct {
	store Store
}

// New constructs a shows Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Book(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var verrs models.ValidationErrors

	venueOK, err := s.store.VenueExists(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if !venueOK {
		verrs = append(verrs, models.FieldError{
			Field:   "venue_id",
			Message: fmt.Sprintf("venue %d does not exist", venueID),
		})
	}

	artistOK, err := s.store.ArtistExists(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if !artistOK {
		verrs = append(verrs, models.FieldError{
			Field:   "artist_id",
			Message: fmt.Sprintf("artist %d does not exist", artistID),
		})
	}

	if startTime.IsZero() {
		verrs = append(verrs, models.FieldError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	// Past-dated bookings are legal; historical shows get backfilled
	// this way.
	return s.store.CreateShow(ctx, &models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteShow(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}
