package repository

import (
	"context"
	"database/sql"

	"github.com/ristoranti/ristoranti-backend/internal/model"
)

// ReservationRepo persists table reservations and answers the seat queries
// behind the availability computation.  A reservation is a single row in
// `prenota`; nothing is ever updated or deleted, rows for the same slot
// simply accumulate.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// AvailableSeats computes the remaining capacity for one restaurant, date
// and turn: the restaurant's maximum minus the sum of already reserved
// seats.  An empty slice means no reservations yet and yields the full
// capacity.  The result is not clamped at zero: inserts are never gated on
// availability, so an overbooked slot legitimately reports a negative
// figure.
func AvailableSeats(maxSeats int64, reserved []int64) int64 {
	var sum int64
	for _, n := range reserved {
		sum += n
	}
	return maxSeats - sum
}

// SeatCounts returns the seat count of every reservation matching the
// (restaurant, turn, date) triple.  Callers feed the result to
// AvailableSeats.  A restaurant without reservations yields an empty
// slice, which is distinct from a missing restaurant; existence is checked
// separately through RestaurantRepo.MaxSeats.
func (r *ReservationRepo) SeatCounts(ctx context.Context, restaurantID, turnID uint64, date string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT num_posti FROM prenota WHERE id_locale = ? AND id_turno = ? AND data = ?",
		restaurantID, turnID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make([]int64, 0)
	for rows.Next() {
		// num_posti may surface as DECIMAL; scan through float64 so the
		// fixed-point type never leaks further up.
		var n float64
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		counts = append(counts, int64(n))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Insert persists one reservation row.  No existence check is run on the
// restaurant or turn and no capacity gate is applied; referential
// integrity is left to the schema constraints and availability stays
// advisory.  Retrying the same input creates a second row.
func (r *ReservationRepo) Insert(ctx context.Context, res model.Reservation) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO prenota (email, id_locale, data, num_posti, id_turno) VALUES (?,?,?,?,?)",
		res.CustomerEmail, res.RestaurantID, res.Date, res.Seats, res.TurnID)
	return err
}
