package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ebuddy/user-api/internal/core/domain"
)

// RBAC enforces role-based access control. A missing role claim is treated
// as the default "user" role.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				role = domain.RoleUser
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "you do not have permission to access this resource")
			}
			return next(c)
		}
	}
}
