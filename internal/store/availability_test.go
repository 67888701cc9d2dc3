package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"showbill/internal/models"
)

func TestAddWindowSuccess(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO available_times (artist_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)).
		WithArgs(int64(1), 4, "18:00", "23:30").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	window, err := s.AddWindow(context.Background(), &models.AvailableWindow{
		ArtistID:  1,
		DayOfWeek: 4,
		StartTime: "18:00",
		EndTime:   "23:30",
	})
	if err != nil {
		t.Fatalf("AddWindow error: %v", err)
	}
	if window.ID != 11 {
		t.Fatalf("expected window ID 11, got %d", window.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddWindowUnknownArtist(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO available_times").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "available_times_artist_id_fkey"})

	_, err := s.AddWindow(context.Background(), &models.AvailableWindow{
		ArtistID:  99,
		DayOfWeek: 0,
		StartTime: "18:00",
		EndTime:   "20:00",
	})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestDeleteWindowNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM available_times WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteWindow(context.Background(), 404)
	if !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("expected ErrWindowNotFound, got %v", err)
	}
}

func TestListWindowsByArtistInsertionOrder(t *testing.T) {
	s, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "artist_id", "day_of_week", "start_time", "end_time"}).
		AddRow(int64(1), int64(5), 0, "18:00", "22:00").
		AddRow(int64(2), int64(5), 0, "20:00", "23:00")

	mock.ExpectQuery("SELECT id, artist_id, day_of_week, start_time, end_time").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	windows, err := s.ListWindowsByArtist(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListWindowsByArtist error: %v", err)
	}

	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0].ID != 1 || windows[1].ID != 2 {
		t.Fatalf("expected insertion order, got %+v", windows)
	}
}
