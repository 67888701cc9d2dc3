package httpapi

import (
	"encoding/json"
	"net/http"

	"showbill/internal/models"
)

func (s *Server) handleAddAvailability(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	var window models.AvailableWindow
	if err := json.NewDecoder(r.Body).Decode(&window); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	window.ArtistID = artistID

	created, err := s.availability.Add(r.Context(), &window)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListAvailability(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	windows, err := s.availability.List(r.Context(), artistID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, windows)
}

func (s *Server) handleDeleteAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid window ID"})
		return
	}

	if err := s.availability.Remove(r.Context(), id); err != nil {
		writeJSON(w, http.StatusNotFound, deleteResponse{Deleted: false, ID: id})
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: true, ID: id})
}
