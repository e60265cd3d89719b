package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Klit-Bucinca/SkillHire/internal/api/metrics"
	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// HireHandler handles HTTP requests for the hire lifecycle.
type HireHandler struct {
	service ports.HireService
}

func NewHireHandler(service ports.HireService) *HireHandler {
	return &HireHandler{service: service}
}

type createHireRequest struct {
	WorkerID int64     `json:"worker_id" validate:"required,gt=0"`
	Date     time.Time `json:"date"      validate:"required"`
	Notes    string    `json:"notes"`
}

type updateHireStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}

// Create handles POST /hire.
//
// @Summary      Create a hire request for a worker
// @Tags         hires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createHireRequest  true   "Hire details"
// @Success      200              {object}  domain.Hire  "idempotent replay of an earlier submission"
// @Success      201              {object}  domain.Hire
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Router       /hire [post]
func (h *HireHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createHireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hire, replayed, err := h.service.Create(c.Request().Context(), actor, ports.CreateHireInput{
		WorkerID:       req.WorkerID,
		Date:           req.Date,
		Notes:          req.Notes,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if replayed {
		return c.JSON(http.StatusOK, hire)
	}
	metrics.HiresCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, hire)
}

// Get handles GET /hire/:id. Any authenticated user may fetch any hire.
//
// @Summary      Get a hire by id
// @Tags         hires
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Hire id"
// @Success      200  {object}  domain.Hire
// @Failure      404  {object}  map[string]string
// @Router       /hire/{id} [get]
func (h *HireHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	hire, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hire)
}

// ListAll handles GET /hire (admin only, gated at the router).
//
// @Summary      List all hires
// @Tags         hires
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Hire
// @Failure      403  {object}  map[string]string
// @Router       /hire [get]
func (h *HireHandler) ListAll(c echo.Context) error {
	hires, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hires)
}

// ListForWorker handles GET /hire/worker/:id.
//
// @Summary      List hires assigned to a worker
// @Tags         hires
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Worker user id"
// @Success      200  {array}   domain.Hire
// @Failure      403  {object}  map[string]string
// @Router       /hire/worker/{id} [get]
func (h *HireHandler) ListForWorker(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	workerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	hires, err := h.service.ListForWorker(c.Request().Context(), actor, workerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hires)
}

// ListForClient handles GET /hire/client/:id.
//
// @Summary      List hires created by a client
// @Tags         hires
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client user id"
// @Success      200  {array}   domain.Hire
// @Failure      403  {object}  map[string]string
// @Router       /hire/client/{id} [get]
func (h *HireHandler) ListForClient(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	hires, err := h.service.ListForClient(c.Request().Context(), actor, clientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hires)
}

// UpdateStatus handles PUT /hire/:id.
//
// @Summary      Accept or reject a pending hire
// @Tags         hires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Hire id"
// @Param        body  body      updateHireStatusRequest  true  "Terminal status"
// @Success      200   {object}  domain.Hire
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /hire/{id} [put]
func (h *HireHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateHireStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hire, err := h.service.UpdateStatus(c.Request().Context(), actor, id, domain.HireStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.HireDecisionsTotal.WithLabelValues(string(hire.Status)).Inc()
	return c.JSON(http.StatusOK, hire)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
