package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timetracker/internal/core/ports"
)

// UserHandler handles the user-facing endpoints this service owns: the
// current-user view, the preferred-hours threshold, and the admin user
// selector.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /v1/users/me.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:                    user.ID,
		FullName:              user.FullName(),
		Role:                  user.Role.String(),
		PreferredWorkingHours: user.PreferredWorkingHours,
	})
}

// SetPreferredHours handles PUT /v1/users/me/preferred-hours.
//
// @Summary      Set the actor's preferred working hours
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  preferredHoursRequest  true  "Daily threshold"
// @Success      204   "no content"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/me/preferred-hours [put]
func (h *UserHandler) SetPreferredHours(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req preferredHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.SetPreferredHours(c.Request().Context(), actor, req.PreferredWorkingHours); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /v1/users — the admin record-assignment selector.
//
// @Summary      Search users by name
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "partial name match"
// @Success      200     {array}   userSummaryResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) Search(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	users, err := h.service.SearchUsers(c.Request().Context(), actor, c.QueryParam("search"))
	if err != nil {
		return err
	}

	resp := make([]userSummaryResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userSummaryResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Role:     u.Role.String(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
