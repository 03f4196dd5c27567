package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/quynhnga171088/user-management/internal/api/metrics"
	"github.com/quynhnga171088/user-management/internal/core/domain"
)

// RBAC enforces role-based access control against the roles the Auth
// middleware extracted from the token. Denial is terminal for the request.
func RBAC(mode domain.MatchMode, required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get("roles").([]domain.Role)
			if !domain.Authorized(granted, required, mode) {
				metrics.AccessDeniedTotal.Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireAny allows callers holding at least one of the given roles.
func RequireAny(roles ...domain.Role) echo.MiddlewareFunc {
	return RBAC(domain.MatchAny, roles...)
}

// RequireAll allows only callers holding every one of the given roles.
func RequireAll(roles ...domain.Role) echo.MiddlewareFunc {
	return RBAC(domain.MatchAll, roles...)
}
