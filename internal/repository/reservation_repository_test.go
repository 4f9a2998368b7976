package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ristoranti/ristoranti-backend/internal/model"
)

func TestAvailableSeats_NoReservations(t *testing.T) {
	for _, max := range []int64{0, 1, 50, 120} {
		if got := AvailableSeats(max, nil); got != max {
			t.Errorf("max=%d: expected %d, got %d", max, max, got)
		}
		if got := AvailableSeats(max, []int64{}); got != max {
			t.Errorf("max=%d empty slice: expected %d, got %d", max, max, got)
		}
	}
}

func TestAvailableSeats_SubtractsSum(t *testing.T) {
	cases := []struct {
		max      int64
		reserved []int64
		want     int64
	}{
		{50, []int64{10, 15}, 25},
		{30, []int64{30}, 0},
		{10, []int64{4, 4, 4}, -2}, // overbooked slots report negative, no clamp
		{100, []int64{1}, 99},
	}
	for _, tc := range cases {
		if got := AvailableSeats(tc.max, tc.reserved); got != tc.want {
			t.Errorf("AvailableSeats(%d, %v) = %d, want %d", tc.max, tc.reserved, got, tc.want)
		}
	}
}

func TestSeatCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT num_posti FROM prenota WHERE id_locale = ? AND id_turno = ? AND data = ?")).
		WithArgs(uint64(7), uint64(2), "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"num_posti"}).AddRow(10.0).AddRow(15.0))

	repo := NewReservationRepo(db)
	counts, err := repo.SeatCounts(context.Background(), 7, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("SeatCounts: %v", err)
	}
	if len(counts) != 2 || counts[0] != 10 || counts[1] != 15 {
		t.Fatalf("expected [10 15], got %v", counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeatCounts_EmptySlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT num_posti FROM prenota")).
		WithArgs(uint64(7), uint64(2), "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"num_posti"}))

	repo := NewReservationRepo(db)
	counts, err := repo.SeatCounts(context.Background(), 7, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("SeatCounts: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty slice, got %v", counts)
	}
}

func TestInsertReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prenota (email, id_locale, data, num_posti, id_turno) VALUES (?,?,?,?,?)")).
		WithArgs("mario@example.com", uint64(7), "2026-09-01", int64(4), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewReservationRepo(db)
	res := model.Reservation{
		CustomerEmail: "mario@example.com",
		RestaurantID:  7,
		Date:          "2026-09-01",
		Seats:         4,
		TurnID:        2,
	}
	if err := repo.Insert(context.Background(), res); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Inserting a reservation and re-querying the slot must reflect the new
// seat count in the availability figure.
func TestReservationRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT num_posti FROM prenota")).
		WithArgs(uint64(7), uint64(2), "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"num_posti"}).AddRow(10.0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prenota")).
		WithArgs("mario@example.com", uint64(7), "2026-09-01", int64(5), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT num_posti FROM prenota")).
		WithArgs(uint64(7), uint64(2), "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"num_posti"}).AddRow(10.0).AddRow(5.0))

	repo := NewReservationRepo(db)
	ctx := context.Background()

	before, err := repo.SeatCounts(ctx, 7, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("SeatCounts before: %v", err)
	}
	if got := AvailableSeats(50, before); got != 40 {
		t.Fatalf("expected 40 available before insert, got %d", got)
	}

	if err := repo.Insert(ctx, model.Reservation{
		CustomerEmail: "mario@example.com",
		RestaurantID:  7,
		Date:          "2026-09-01",
		Seats:         5,
		TurnID:        2,
	}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	after, err := repo.SeatCounts(ctx, 7, 2, "2026-09-01")
	if err != nil {
		t.Fatalf("SeatCounts after: %v", err)
	}
	if got := AvailableSeats(50, after); got != 35 {
		t.Fatalf("expected 35 available after insert, got %d", got)
	}
}
