package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

func rbacContext(claims *ports.Claims) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if claims != nil {
		c.Set(claimsKey, claims)
	}
	return c
}

func TestRBAC_AllowedRole(t *testing.T) {
	c := rbacContext(&ports.Claims{ID: "u1", Role: domain.RoleAdmin})

	ran := false
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		ran = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !ran {
		t.Fatalf("next handler did not run")
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	c := rbacContext(&ports.Claims{ID: "u1", Role: domain.RoleUser})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("next handler should not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_MissingClaims(t *testing.T) {
	c := rbacContext(nil)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("next handler should not run")
		return nil
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRBAC_MultipleRoles(t *testing.T) {
	c := rbacContext(&ports.Claims{ID: "u1", Role: domain.RoleUser})

	ran := false
	handler := RBAC(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		ran = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !ran {
		t.Fatalf("next handler did not run")
	}
}
