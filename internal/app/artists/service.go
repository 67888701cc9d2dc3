package artists

import (
	"context"
	"time"

	"showbill/internal/app/shows"
	"showbill/internal/models"
)

// Store defines persistence operations for artists.
type Store interface {
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
	ListArtists(ctx context.Context) ([]models.NamedRef, error)
	RecentArtists(ctx context.Context, limit int) ([]models.NamedRef, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error)
	ListWindowsByArtist(ctx context.Context, artistID int64) ([]models.AvailableWindow, error)
}

// Page is an artist with declared availability and shows split into past
// and upcoming halves.
type Page struct {
	models.Artist
	AvailableTimes     []models.AvailableWindow `json:"available_times"`
	PastShows          []models.ArtistShow      `json:"past_shows"`
	UpcomingShows      []models.ArtistShow      `json:"upcoming_shows"`
	PastShowsCount     int                      `json:"past_shows_count"`
	UpcomingShowsCount int                      `json:"upcoming_shows_count"`
}

// Service coordinates artist-related operations.
type Service interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Get(ctx context.Context, id int64) (*Page, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.NamedRef, error)
	Recent(ctx context.Context) ([]models.NamedRef, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artists Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Get(ctx context.Context, id int64) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	windows, err := s.store.ListWindowsByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	showList, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := shows.Partition(showList, s.now())
	return &Page{
		Artist:             *artist,
		AvailableTimes:     windows,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}

func (s *service) List(ctx context.Context) ([]models.NamedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

const recentLimit = 10

func (s *service) Recent(ctx context.Context) ([]models.NamedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentArtists(ctx, recentLimit)
}
