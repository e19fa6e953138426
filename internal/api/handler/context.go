package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timetracker/internal/api/middleware"
	"github.com/clockwise/timetracker/internal/core/domain"
)

// ctxActor extracts the actor injected by the Auth middleware. Presence of
// both claims proves the middleware ran; handlers fail fast with 401 rather
// than reaching a service with a zero actor.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	role, ok := c.Get(middleware.CtxRole).(domain.Role)
	if id == "" || !ok {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{ID: id, Role: role}, nil
}
