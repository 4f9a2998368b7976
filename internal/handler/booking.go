package handler

import (
	"context"  // context with cancellation for DB calls
	"net/http" // HTTP status codes
	"strings"  // input normalization
	"time"     // timeouts and event timestamps

	"github.com/labstack/echo/v4"

	"github.com/ristoranti/ristoranti-backend/internal/middleware"
	"github.com/ristoranti/ristoranti-backend/internal/model"
	"github.com/ristoranti/ristoranti-backend/internal/queue"
	"github.com/ristoranti/ristoranti-backend/internal/repository"
	queue_publisher "github.com/ristoranti/ristoranti-backend/internal/service"
)

// BookingHandler serves the turn listing, the seat availability check and
// the reservation insert.  Availability is advisory: the insert never
// re-checks capacity, so two clients racing for the last seats can both
// succeed and push the reported availability below zero.
type BookingHandler struct {
	Restaurants  *repository.RestaurantRepo
	Reservations *repository.ReservationRepo
	Turns        *repository.TurnRepo
}

func NewBookingHandler(rest *repository.RestaurantRepo, res *repository.ReservationRepo, t *repository.TurnRepo) *BookingHandler {
	return &BookingHandler{Restaurants: rest, Reservations: res, Turns: t}
}

// tablesReq carries the availability parameters.  GET clients send them as
// query parameters, the legacy POST /check_tables clients as a JSON body.
type tablesReq struct {
	RestaurantID uint64 `query:"id" json:"id"`
	TurnID       uint64 `query:"turn" json:"turn"`
	Date         string `query:"date" json:"date"`
}

// reserveReq is the reservation insert body.
type reserveReq struct {
	RestaurantID uint64 `json:"id"`
	TurnID       uint64 `json:"turn"`
	Date         string `json:"date"`
	Seats        int64  `json:"qt"`
	Email        string `json:"email"`
}

// ListTurns returns every service turn with formatted start/end times.
func (h *BookingHandler) ListTurns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	turns, err := h.Turns.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, turns)
}

// CheckTables reports the remaining seats for a restaurant, date and turn.
// A restaurant without reservations for the slot reports its full
// capacity; an unknown restaurant id is a 404, never a silent zero.  The
// figure is serialized as a plain number and may be negative when the slot
// was overbooked.
func (h *BookingHandler) CheckTables(c echo.Context) error {
	var req tablesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid parameters"})
	}
	if req.RestaurantID == 0 || req.TurnID == 0 || req.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing parameters: id/turn/date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	max, err := h.Restaurants.MaxSeats(ctx, req.RestaurantID)
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	counts, err := h.Reservations.SeatCounts(ctx, req.RestaurantID, req.TurnID, req.Date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	available := repository.AvailableSeats(max, counts)
	return c.JSON(http.StatusOK, echo.Map{"available_seats": float64(available)})
}

// Reserve inserts one reservation row.  The customer email defaults to the
// token subject when the body omits it.  The insert is not idempotent and
// carries no capacity gate; after it succeeds a reservation.created event
// is published, with failures logged and ignored so the booking itself
// never fails on broker trouble.
func (h *BookingHandler) Reserve(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		if email, ok := middleware.CurrentEmail(c); ok {
			req.Email = email
		}
	}
	if req.RestaurantID == 0 || req.TurnID == 0 || req.Date == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing parameters: id/turn/date/email"})
	}
	if req.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "qt must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.Insert(ctx, model.Reservation{
		CustomerEmail: req.Email,
		RestaurantID:  req.RestaurantID,
		Date:          req.Date,
		Seats:         req.Seats,
		TurnID:        req.TurnID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}

	_ = queue_publisher.PublishReservationCreated(ctx, queue.ReservationCreatedEvent{
		CustomerEmail: req.Email,
		RestaurantID:  req.RestaurantID,
		TurnID:        req.TurnID,
		Date:          req.Date,
		Seats:         req.Seats,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "reservation successfully inserted"})
}
