package handler

import (
	"context"  // context with cancellation for DB calls
	"net/http" // HTTP status codes
	"strconv"  // id parsing
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4"

	"github.com/ristoranti/ristoranti-backend/internal/repository"
)

// RestaurantHandler serves the discovery endpoints: listing, search,
// detail, geographic lookups, images and the partial field update.
type RestaurantHandler struct {
	Restaurants *repository.RestaurantRepo
}

func NewRestaurantHandler(r *repository.RestaurantRepo) *RestaurantHandler {
	return &RestaurantHandler{Restaurants: r}
}

// idReq is the body shape of the detail endpoint when called via POST.
type idReq struct {
	ID uint64 `json:"id"`
}

// updateReq carries the PUT body of the partial restaurant update.  Nil
// pointers distinguish "leave alone" from "set to empty".
type updateReq struct {
	ID          uint64  `json:"id"`
	Name        *string `json:"name"`
	Road        *string `json:"road"`
	HouseNumber *string `json:"house_number"`
	MaxChairs   *int64  `json:"max_chairs"`
	VillageID   *uint64 `json:"village_id"`
	Description *string `json:"description"`
	Banner      *string `json:"banner"`
}

// All returns the full joined restaurant listing, one row per restaurant.
func (h *RestaurantHandler) All(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Restaurants.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Search filters the listing by the optional nome_locale / nome_comune /
// nome_provincia / nome_regione query parameters.  Every supplied value is
// a case-insensitive substring condition; with none the full set comes back.
func (h *RestaurantHandler) Search(c echo.Context) error {
	f := repository.SearchFilters{
		Restaurant:   c.QueryParam("nome_locale"),
		Municipality: c.QueryParam("nome_comune"),
		Province:     c.QueryParam("nome_provincia"),
		Region:       c.QueryParam("nome_regione"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Restaurants.Search(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// ByID returns the joined projection of a single restaurant.  The id is
// taken from the query string on GET and from the JSON body on POST, which
// keeps the legacy POST /get_restaurant_from_id clients working.
func (h *RestaurantHandler) ByID(c echo.Context) error {
	id, ok := restaurantID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing parameter: id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row, err := h.Restaurants.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, row)
}

// Nearest returns restaurants exactly matching the supplied village /
// county / state names.
func (h *RestaurantHandler) Nearest(c echo.Context) error {
	village := c.QueryParam("village")
	county := c.QueryParam("county")
	state := c.QueryParam("state")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Restaurants.Nearest(ctx, village, county, state)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows})
}

// Others returns restaurants in the same county or village while excluding
// the ids[] already shown by the client.
func (h *RestaurantHandler) Others(c echo.Context) error {
	county := c.QueryParam("county")
	village := c.QueryParam("village")
	if county == "" && village == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "county or village required"})
	}
	exclude := make([]uint64, 0)
	for _, raw := range c.QueryParams()["ids[]"] {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id in exclusion list"})
		}
		exclude = append(exclude, id)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Restaurants.Others(ctx, county, village, exclude)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows})
}

// Images returns the gallery of a restaurant as an array of image rows.
func (h *RestaurantHandler) Images(c echo.Context) error {
	id, ok := restaurantID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing parameter: id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	imgs, err := h.Restaurants.ListImages(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]echo.Map, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, echo.Map{"id": img.ID, "id_locale": img.RestaurantID, "url": img.URL})
	}
	return c.JSON(http.StatusOK, out)
}

// Update applies a partial field update to a restaurant.
func (h *RestaurantHandler) Update(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing parameter: id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Restaurants.Update(ctx, req.ID, repository.RestaurantUpdate{
		Name:           req.Name,
		Road:           req.Road,
		HouseNumber:    req.HouseNumber,
		MaxSeats:       req.MaxChairs,
		MunicipalityID: req.VillageID,
		Description:    req.Description,
		Banner:         req.Banner,
	})
	if err != nil {
		if err == repository.ErrRestaurantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// restaurantID extracts the restaurant id from the `id` query parameter,
// falling back to a JSON body for the legacy POST callers.
func restaurantID(c echo.Context) (uint64, bool) {
	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		return id, err == nil
	}
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return 0, false
	}
	return req.ID, true
}
