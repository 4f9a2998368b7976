// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver error strings. For example, ErrRestaurantNotFound separates a
// missing restaurant from a restaurant that merely has no reservations,
// and ErrEmailExists signals a duplicate signup.
package repository

import "errors"

// ErrRestaurantNotFound is returned when a restaurant id does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrEmailExists is returned when a signup collides with an already
// registered customer email. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
