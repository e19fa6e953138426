package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timetracker/internal/core/domain"
)

// RequireRank admits only actors whose role is at least as privileged as
// minimum. The check compares ranks, never role names, so inserting a role
// into the hierarchy does not silently bypass existing gates.
func RequireRank(minimum domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok || !role.AtLeast(minimum) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
