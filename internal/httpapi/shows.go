package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"showbill/internal/models"
)

type bookShowRequest struct {
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

type bookShowResponse struct {
	Created          bool                    `json:"created"`
	ShowID           int64                   `json:"show_id,omitempty"`
	ValidationErrors models.ValidationErrors `json:"validation_errors,omitempty"`
}

func (s *Server) handleBookShow(w http.ResponseWriter, r *http.Request) {
	var req bookShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	show, err := s.shows.Book(r.Context(), req.VenueID, req.ArtistID, req.StartTime)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, bookShowResponse{
				Created:          false,
				ValidationErrors: verrs,
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookShowResponse{Created: true, ShowID: show.ID})
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.shows.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid show ID"})
		return
	}

	if err := s.shows.Delete(r.Context(), id); err != nil {
		writeJSON(w, http.StatusNotFound, deleteResponse{Deleted: false, ID: id})
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: true, ID: id})
}
