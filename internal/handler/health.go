package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Ping is a simple liveness endpoint used by load balancers and the
// frontend's connectivity check.  It answers the JSON string "pong" with
// an HTTP 200 status code.
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, "pong")
}
