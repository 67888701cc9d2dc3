package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"showbill/internal/app/directory"
	"showbill/internal/models"
	"showbill/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error            string                  `json:"error"`
	ValidationErrors models.ValidationErrors `json:"validation_errors"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

// writeError maps domain errors onto HTTP statuses. Store internals are
// never surfaced: anything unrecognized becomes a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var verrs models.ValidationErrors

	switch {
	case errors.Is(err, store.ErrVenueNotFound),
		errors.Is(err, store.ErrArtistNotFound),
		errors.Is(err, store.ErrShowNotFound),
		errors.Is(err, store.ErrWindowNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrVenueExists),
		errors.Is(err, store.ErrArtistExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrInvalidEntity):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, directory.ErrMalformedLocation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:            "validation failed",
			ValidationErrors: verrs,
		})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
