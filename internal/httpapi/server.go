package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"showbill/internal/app/artists"
	"showbill/internal/app/venues"
	"showbill/internal/models"
)

// VenueService captures the venue operations needed by the HTTP handlers.
type VenueService interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Get(ctx context.Context, id int64) (*venues.Page, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
	Recent(ctx context.Context) ([]models.NamedRef, error)
}

// ArtistService captures the artist operations needed by the HTTP handlers.
type ArtistService interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Get(ctx context.Context, id int64) (*artists.Page, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.NamedRef, error)
	Recent(ctx context.Context) ([]models.NamedRef, error)
}

// ShowService coordinates booking and show listings.
type ShowService interface {
	Book(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.ShowListing, error)
}

// AvailabilityService manages artist availability windows.
type AvailabilityService interface {
	Add(ctx context.Context, window *models.AvailableWindow) (*models.AvailableWindow, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context, artistID int64) ([]models.AvailableWindow, error)
}

// DirectoryService powers the landing aggregation and search.
type DirectoryService interface {
	Venues(ctx context.Context) ([]models.CityGroup, error)
	SearchVenues(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchVenuesByLocation(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchArtists(ctx context.Context, term string) ([]models.SearchHit, error)
	SearchArtistsByLocation(ctx context.Context, term string) ([]models.SearchHit, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues       VenueService
	artists      ArtistService
	shows        ShowService
	availability AvailabilityService
	directory    DirectoryService
}

// New configures a Server over the given services.
func New(
	venues VenueService,
	artists ArtistService,
	shows ShowService,
	availability AvailabilityService,
	directory DirectoryService,
) *Server {
	return &Server{
		venues:       venues,
		artists:      artists,
		shows:        shows,
		availability: availability,
		directory:    directory,
	}
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Venues
	api.HandleFunc("/venues", s.handleDirectory).Methods(http.MethodGet)
	api.HandleFunc("/venues", s.handleCreateVenue).Methods(http.MethodPost)
	api.HandleFunc("/venues/recent", s.handleRecentVenues).Methods(http.MethodGet)
	api.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodGet)
	api.HandleFunc("/venues/search/location", s.handleSearchVenuesByLocation).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id:[0-9]+}", s.handleGetVenue).Methods(http.MethodGet)
	api.HandleFunc("/venues/{id:[0-9]+}", s.handleUpdateVenue).Methods(http.MethodPut)
	api.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)

	// Artists
	api.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	api.HandleFunc("/artists", s.handleCreateArtist).Methods(http.MethodPost)
	api.HandleFunc("/artists/recent", s.handleRecentArtists).Methods(http.MethodGet)
	api.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodGet)
	api.HandleFunc("/artists/search/location", s.handleSearchArtistsByLocation).Methods(http.MethodGet)
	api.HandleFunc("/artists/{id:[0-9]+}", s.handleGetArtist).Methods(http.MethodGet)
	api.HandleFunc("/artists/{id:[0-9]+}", s.handleUpdateArtist).Methods(http.MethodPut)
	api.HandleFunc("/artists/{id:[0-9]+}", s.handleDeleteArtist).Methods(http.MethodDelete)

	// Availability windows
	api.HandleFunc("/artists/{id:[0-9]+}/availability", s.handleListAvailability).Methods(http.MethodGet)
	api.HandleFunc("/artists/{id:[0-9]+}/availability", s.handleAddAvailability).Methods(http.MethodPost)
	api.HandleFunc("/availability/{id:[0-9]+}", s.handleDeleteAvailability).Methods(http.MethodDelete)

	// Shows
	api.HandleFunc("/shows", s.handleListShows).Methods(http.MethodGet)
	api.HandleFunc("/shows", s.handleBookShow).Methods(http.MethodPost)
	api.HandleFunc("/shows/{id:[0-9]+}", s.handleDeleteShow).Methods(http.MethodDelete)

	return r
}
