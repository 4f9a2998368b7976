package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ristoranti/ristoranti-backend/internal/handler"
	"github.com/ristoranti/ristoranti-backend/internal/middleware"
)

// RegisterBooking registers the bearer-protected booking endpoints: turn
// listing, seat availability and the reservation insert.  As with the
// discovery routes, legacy aliases run the same handlers.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mw := append([]echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret)}, extra...)

	g := e.Group("/api/v1", mw...)
	g.GET("/turns", h.ListTurns)
	g.GET("/tables", h.CheckTables)
	g.POST("/restaurant/reservation", h.Reserve)

	// Legacy aliases
	e.POST("/check_tables", h.CheckTables, mw...)
	e.POST("/insert_reservation", h.Reserve, mw...)
}
