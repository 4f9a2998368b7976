package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for scheme checking

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/ristoranti/ristoranti-backend/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject (the customer email) into the request
// context under the key "email".  The provided secret must match the one
// used when issuing tokens.  A malformed Authorization header (wrong part
// count or wrong scheme), a bad signature, an expired token and a missing
// subject all produce 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			parts := strings.Fields(auth)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			email, err := utils.ParseSubject(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("email", email)
			return next(c)
		}
	}
}

// CurrentEmail extracts the authenticated customer email stored by JWTAuth.
// The boolean is false when the request was not authenticated.
func CurrentEmail(c echo.Context) (string, bool) {
	v, ok := c.Get("email").(string)
	return v, ok && v != ""
}
