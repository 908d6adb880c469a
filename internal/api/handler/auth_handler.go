package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/api/middleware"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

// AuthHandler handles registration, login, session inspection, and logout.
// Session tokens travel in the HTTP-only cookie named by
// middleware.SessionCookie; the server keeps no session state.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Age       int    `json:"age"        validate:"required,min=1"`
	Password  string `json:"password"   validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account and provisions its cart.
//
// @Summary      Register a new user
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/sessions/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, user)
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  map[string]string
// @Router       /api/sessions/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return successMessage(c, http.StatusOK, "login successful")
}

// Current returns the identity snapshot embedded in the session token. It
// is the token payload from login time, not a fresh read from the store.
//
// @Summary      Current session
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]string
// @Router       /api/sessions/current [get]
func (h *AuthHandler) Current(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return success(c, http.StatusOK, claims)
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiration; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/sessions/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return successMessage(c, http.StatusOK, "logout successful")
}
