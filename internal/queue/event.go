// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation row is inserted.
// It carries enough information for downstream consumers to log, notify or
// feed analytics without querying the primary database.
type ReservationCreatedEvent struct {
	CustomerEmail string `json:"customer_email"`
	RestaurantID  uint64 `json:"restaurant_id"`
	TurnID        uint64 `json:"turn_id"`
	Date          string `json:"date"`
	Seats         int64  `json:"seats"`
	CreatedAt     string `json:"created_at"`
}
