package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"showbill/internal/models"
)

// ErrMalformedLocation rejects location queries that do not split into
// exactly two comma-separated tokens. Anything other than "city, state"
// is a malformed query, never a partial match.
var ErrMalformedLocation = errors.New(`location search term must look like "city, state"`)

// Store defines the aggregate and search queries the directory needs.
type Store interface {
	ListVenueCounts(ctx context.Context, ref time.Time) ([]models.VenueCount, error)
	SearchVenuesByName(ctx context.Context, term string, ref time.Time) ([]models.SearchHit, error)
	SearchVenuesByLocation(ctx context.Context, city, state string, ref time.Time) ([]models.SearchHit, error)
	SearchArtistsByName(ctx context.Context, term string, ref time.Time) ([]models.SearchHit, error)
	SearchArtistsByLocation(ctx context.Context, city, state string, ref time.Time) ([]models.SearchHit, error)
}

// Service powers the landing directory and the search endpoints.
type Service interface {
	// Venues groups every venue by its exact (city, state) pair and
	// reports per-venue upcoming-show counts. Venues without shows
	// appear with a count of zero.
	Venues(ctx context.Context) ([]models.CityGroup, error)
	SearchVenues(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchVenuesByLocation(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchArtists(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchArtistsByLocation(ctx context.Context, term string) ([]models.SearchHit, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a directory Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Venues(ctx context.Context) ([]models.CityGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts, err := s.store.ListVenueCounts(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return groupByCityState(counts), nil
}

// groupByCityState buckets venues by their exact (city, state) pair.
// Matching is case-sensitive with no whitespace normalization; groups
// keep first-seen order and venues keep store iteration order.
func groupByCityState(counts []models.VenueCount) []models.CityGroup {
	type key struct{ city, state string }

	var groups []models.CityGroup
	index := make(map[key]int)

	for _, vc := range counts {
		k := key{vc.City, vc.State}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.CityGroup{City: vc.City, State: vc.State})
		}
		groups[i].Venues = append(groups[i].Venues, models.SearchHit{
			ID:               vc.ID,
			Name:             vc.Name,
			NumUpcomingShows: vc.NumUpcomingShows,
		})
	}

	return groups
}

func (s *service) SearchVenues(ctx context.Context, term string) ([]models.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchVenuesByName(ctx, term, s.now())
}

func (s *service) SearchVenuesByLocation(ctx context.Context, term string) ([]models.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	city, state, err := splitLocation(term)
	if err != nil {
		return nil, err
	}
	return s.store.SearchVenuesByLocation(ctx, city, state, s.now())
}

func (s *service) SearchArtists(ctx context.Context, term string) ([]models.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchArtistsByName(ctx, term, s.now())
}

func (s *service) SearchArtistsByLocation(ctx context.Context, term string) ([]models.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	city, state, err := splitLocation(term)
	if err != nil {
		return nil, err
	}
	return s.store.SearchArtistsByLocation(ctx, city, state, s.now())
}

func splitLocation(term string) (city, state string, err error) {
	parts := strings.Split(term, ",")
	if len(parts) != 2 {
		return "", "", ErrMalformedLocation
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
