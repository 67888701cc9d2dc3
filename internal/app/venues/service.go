package venues

import (
	"context"
	"time"

	"showbill/internal/app/shows"
	"showbill/internal/models"
)

// Store defines persistence operations for venues.
type Store interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	RecentVenues(ctx context.Context, limit int) ([]models.NamedRef, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error)
}

// Page is a venue with its shows split into past and upcoming halves.
type Page struct {
	models.Venue
	PastShows          []models.VenueShow `json:"past_shows"`
	UpcomingShows      []models.VenueShow `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// Service coordinates venue-related operations.
type Service interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Get(ctx context.Context, id int64) (*Page, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
	Recent(ctx context.Context) ([]models.NamedRef, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Get(ctx context.Context, id int64) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	showList, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := shows.Partition(showList, s.now())
	return &Page{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}

const recentLimit = 10

func (s *service) Recent(ctx context.Context) ([]models.NamedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentVenues(ctx, recentLimit)
}
