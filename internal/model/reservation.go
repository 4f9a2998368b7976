package model

// Reservation mirrors a row of the `prenota` table.  The table has no
// surrogate key: a reservation is just the accumulation of seats booked by
// a customer for one restaurant, date and turn.  Multiple rows for the same
// slot stack up; availability is the restaurant capacity minus their sum.
//
// Fields:
//  CustomerEmail – email of the booking customer.
//  RestaurantID  – restaurant being booked.
//  Date          – service date (YYYY-MM-DD).
//  Seats         – number of seats reserved by this row.
//  TurnID        – service turn being booked.
type Reservation struct {
	CustomerEmail string // prenota.email
	RestaurantID  uint64 // prenota.id_locale
	Date          string // prenota.data
	Seats         int64  // prenota.num_posti
	TurnID        uint64 // prenota.id_turno
}
