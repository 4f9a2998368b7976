package repository

import (
	"context"
	"database/sql"
)

// TurnRepo reads the shared service turns (lunch, dinner, ...).  Turns are
// reference data populated out of band; there are no write operations.
type TurnRepo struct {
	db *sql.DB
}

// NewTurnRepo returns a new TurnRepo bound to the given database.
func NewTurnRepo(db *sql.DB) *TurnRepo { return &TurnRepo{db: db} }

// TurnRow is the wire shape of a service turn.
type TurnRow struct {
	ID    uint64 `json:"id"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// ListAll returns every turn with its window formatted as HH:MM:SS.  The
// formatting happens in SQL so TIME columns reach the client as plain
// strings regardless of driver scan behavior.
func (r *TurnRepo) ListAll(ctx context.Context) ([]TurnRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, TIME_FORMAT(ora_inizio, '%H:%i:%s'), TIME_FORMAT(ora_fine, '%H:%i:%s') FROM turno")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]TurnRow, 0)
	for rows.Next() {
		var t TurnRow
		if err := rows.Scan(&t.ID, &t.Start, &t.End); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
