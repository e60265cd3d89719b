package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// StatsHandler serves the read-side aggregates over hire records.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// ClientStats handles GET /hire/client/stats.
//
// Admins may target any client via ?clientId=; everyone else gets their own
// breakdown.
//
// @Summary      Hire counts for one client
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  query     int  false  "Target client id (admin only)"
// @Success      200       {object}  ports.ClientStats
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Router       /hire/client/stats [get]
func (h *StatsHandler) ClientStats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var requested int64
	if raw := c.QueryParam("clientId"); raw != "" {
		requested, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || requested <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid clientId")
		}
	}

	stats, err := h.service.ClientStats(c.Request().Context(), actor, requested)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AdminStats handles GET /hire/admin/stats (Admin/Worker, gated at the router).
//
// @Summary      Marketplace-wide hire statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  map[string]string
// @Router       /hire/admin/stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.service.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
