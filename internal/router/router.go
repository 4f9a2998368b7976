package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/ristoranti/ristoranti-backend/internal/handler"    // handlers implementing the endpoint logic
	"github.com/ristoranti/ristoranti-backend/internal/middleware" // JWT authentication middleware
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently that is just the liveness ping.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", handler.Ping)
}

// RegisterAuth registers the customer authentication endpoints.  Signup
// and signin live outside the protected group because they are what
// produces a token in the first place; verify_token and the profile
// endpoints require a valid bearer token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	e.POST("/api/v1/signup", a.Signup)
	e.POST("/api/v1/signin", a.Signin)

	g := e.Group("/api/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/verify_token", a.VerifyToken)
	g.GET("/user", a.Me)
	g.PATCH("/user", a.UpdateProfile)
}
