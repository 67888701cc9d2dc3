package httpapi

import (
	"context"
	"net/http"

	"showbill/internal/models"
)

type searchResponse struct {
	Count int                `json:"count"`
	Data  []models.SearchHit `json:"data"`
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	groups, err := s.directory.Venues(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.directory.SearchVenues)
}

func (s *Server) handleSearchVenuesByLocation(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.directory.SearchVenuesByLocation)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.directory.SearchArtists)
}

func (s *Server) handleSearchArtistsByLocation(w http.ResponseWriter, r *http.Request) {
	s.search(w, r, s.directory.SearchArtistsByLocation)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) ([]models.SearchHit, error)) {
	hits, err := fn(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Count: len(hits), Data: hits})
}
