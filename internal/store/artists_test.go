package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"showbill/internal/models"
)

func TestCreateArtistSuccess(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000",
			"Rock n Roll", "", "", "", true, "Looking for shows").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	artist, err := s.CreateArtist(context.Background(), &models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows",
	})
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}
	if artist.ID != 4 {
		t.Fatalf("expected artist ID 4, got %d", artist.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateArtistNameTaken(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO artists").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "artists_name_key"})

	_, err := s.CreateArtist(context.Background(), &models.Artist{
		Name:  "Guns N Petals",
		City:  "San Francisco",
		State: "CA",
	})
	if !errors.Is(err, ErrArtistExists) {
		t.Fatalf("expected ErrArtistExists, got %v", err)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery("UPDATE artists").
		WillReturnError(sql.ErrNoRows)

	_, err := s.UpdateArtist(context.Background(), 404, &models.Artist{
		Name:  "Nobody",
		City:  "Austin",
		State: "TX",
	})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestDeleteArtistNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM artists WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteArtist(context.Background(), 404)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}
