package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quynhnga171088/user-management/internal/core/domain"
)

func newRBACContext(e *echo.Echo, roles []domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set("roles", roles)
	}
	return c, rec
}

func TestRequireAny_Allows(t *testing.T) {
	e := echo.New()
	c, rec := newRBACContext(e, []domain.Role{domain.RoleUser})

	called := false
	handler := RequireAny(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAny_Forbids(t *testing.T) {
	e := echo.New()
	c, _ := newRBACContext(e, []domain.Role{domain.RoleUser})

	handler := RequireAny(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireAll(t *testing.T) {
	e := echo.New()

	c, _ := newRBACContext(e, []domain.Role{domain.RoleAdmin, domain.RoleUser})
	handler := RequireAll(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected allow for full role set, got %v", err)
	}

	c, _ = newRBACContext(e, []domain.Role{domain.RoleAdmin})
	handler = RequireAll(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_MissingClaims(t *testing.T) {
	e := echo.New()
	c, _ := newRBACContext(e, nil)

	handler := RequireAny(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
