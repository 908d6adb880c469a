package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/ports"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "ecommerceToken"

const claimsKey = "session_claims"

// Auth extracts the session token from the cookie, verifies it, and injects
// the identity claims into the request context. Missing, malformed, expired,
// and tampered tokens all yield 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims, err := auth.Current(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the identity claims injected by Auth, or nil when the
// middleware did not run on this route.
func ClaimsFrom(c echo.Context) *ports.Claims {
	claims, _ := c.Get(claimsKey).(*ports.Claims)
	return claims
}
