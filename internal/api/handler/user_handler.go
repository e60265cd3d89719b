package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Klit-Bucinca/SkillHire/internal/api/metrics"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// UserHandler handles admin-side account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Name           string `json:"name"            validate:"required"`
	Surname        string `json:"surname"         validate:"required"`
	PersonalNumber string `json:"personal_number" validate:"required"`
	Username       string `json:"username"        validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Role           string `json:"role"            validate:"required"`
}

// List handles GET /users (admin only, gated at the router).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id (admin only, gated at the router).
//
// @Summary      Update a user's account fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "New account fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:           req.Name,
		Surname:        req.Surname,
		PersonalNumber: req.PersonalNumber,
		Username:       req.Username,
		Email:          req.Email,
		Role:           req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id?force= (admin only, gated at the router).
//
// @Summary      Delete a user, optionally cascading to dependent records
// @Tags         users
// @Security     BearerAuth
// @Param        id     path  int     true   "User id"
// @Param        force  query bool    false  "Remove hires, photos, services, and profiles first"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	force, _ := strconv.ParseBool(c.QueryParam("force"))

	if err := h.service.Delete(c.Request().Context(), id, force); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.WithLabelValues(strconv.FormatBool(force)).Inc()
	return c.NoContent(http.StatusNoContent)
}
