package handler

import (
	"context"      // context with cancellation for DB calls
	"database/sql" // sentinel errors from database/sql
	"net/http"     // HTTP status codes
	"strings"      // input normalization
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/ristoranti/ristoranti-backend/internal/config"     // app configuration
	"github.com/ristoranti/ristoranti-backend/internal/middleware" // authenticated identity lookup
	"github.com/ristoranti/ristoranti-backend/internal/repository" // DB repositories
	"github.com/ristoranti/ristoranti-backend/internal/utils"      // hashing and token issuing
)

// AuthHandler bundles dependencies for the customer auth endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
}

func NewAuthHandler(cfg config.Config, c *repository.CustomerRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: c}
}

// ----- DTOs -----

type signupReq struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type profileReq struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// tokenResp is the bearer credential returned by signup and signin.
type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup creates a customer account and returns a token immediately.
// A duplicate email is a conflict regardless of the supplied password.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Surname == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/surname/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Customers.Create(ctx, req.Email, req.Name, req.Surname, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create customer failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, tokenResp{AccessToken: access.Token, TokenType: "bearer"})
}

// Signin verifies credentials and returns a fresh token.  Unknown email
// and wrong password produce the same answer so the endpoint does not
// reveal which accounts exist.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(cust.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, cust.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access.Token, TokenType: "bearer"})
}

// VerifyToken confirms that the presented bearer token is valid.  The JWT
// middleware already rejected anything invalid, so reaching the handler
// means the answer is yes.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"valid": true})
}

// Me returns the profile of the authenticated customer.  JSON keys keep
// the historical Italian column names the frontend binds to.
func (h *AuthHandler) Me(c echo.Context) error {
	email, ok := middleware.CurrentEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"mail":    cust.Email,
		"nome":    cust.Name,
		"cognome": cust.Surname,
	})
}

// UpdateProfile patches the name and surname of the authenticated
// customer.  The identity always comes from the token subject; a body
// cannot redirect the update to another account.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	email, ok := middleware.CurrentEmail(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" && strings.TrimSpace(req.Surname) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Customers.UpdateProfile(ctx, email, strings.TrimSpace(req.Name), strings.TrimSpace(req.Surname)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
