package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// ctxActor rebuilds the acting identity from the claims injected by the Auth
// middleware and fast-fails before any service call: id and role must both be
// present, or the middleware did not run.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if id == 0 || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return ports.Actor{ID: id, Username: username, Role: domain.Role(role)}, nil
}
