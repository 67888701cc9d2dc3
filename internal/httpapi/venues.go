package httpapi

import (
	"encoding/json"
	"net/http"

	"showbill/internal/models"
)

type deleteResponse struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := s.venues.Create(r.Context(), &venue)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	page, err := s.venues.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := s.venues.Update(r.Context(), id, &venue)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		// Deleting something already gone reports failure, it does
		// not blow up.
		writeJSON(w, http.StatusNotFound, deleteResponse{Deleted: false, ID: id})
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: true, ID: id})
}

func (s *Server) handleRecentVenues(w http.ResponseWriter, r *http.Request) {
	recent, err := s.venues.Recent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recent)
}
