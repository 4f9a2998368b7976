package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ristoranti/ristoranti-backend/internal/handler"
	"github.com/ristoranti/ristoranti-backend/internal/middleware"
)

// RegisterRestaurants registers the bearer-protected discovery endpoints.
// extra carries optional infrastructure middleware (response cache, rate
// limiting) applied after JWT authentication.  Legacy path aliases from
// earlier API revisions stay registered so old clients keep working; they
// run the same handlers with the same middleware chain.
func RegisterRestaurants(e *echo.Echo, h *handler.RestaurantHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	mw := append([]echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret)}, extra...)

	g := e.Group("/api/v1", mw...)
	g.GET("/restaurant/all", h.All)
	g.GET("/restaurant/search", h.Search)
	g.GET("/restaurant", h.ByID)
	g.POST("/restaurant", h.ByID)
	g.PUT("/restaurant", h.Update)
	g.GET("/restaurant/nearest", h.Nearest)
	g.GET("/restaurant/others", h.Others)
	g.GET("/imgs", h.Images)

	// Legacy aliases
	e.GET("/get_all_restaurants", h.All, mw...)
	e.GET("/search_restaurants", h.Search, mw...)
	e.POST("/get_restaurant_from_id", h.ByID, mw...)
}
