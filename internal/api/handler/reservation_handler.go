package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morice333/workstation-queue-dashboard/internal/api/metrics"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
)

// ReservationHandler handles the requester-facing routes.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Dashboard handles GET /. Completed reservations are purged explicitly
// before the listings so they are never shown.
//
// @Summary      Requester dashboard
// @Tags         reservations
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       / [get]
func (h *ReservationHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	purged, err := h.service.PurgeCompleted(ctx)
	if err != nil {
		return err
	}
	metrics.ReservationsPurgedTotal.Add(float64(purged))

	pending, err := h.service.ListPending(ctx)
	if err != nil {
		return err
	}
	running, err := h.service.ListRunning(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Pending: toReservationResponses(pending),
		Running: toReservationResponses(running),
		Chart:   chartEntries(running),
	})
}

// Submit handles POST /submit. The response body matches the legacy
// contract: {"status":"success"} regardless of whether the notification
// could be delivered.
//
// @Summary      Submit a reservation request
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      submitRequest  true  "Reservation request"
// @Success      200   {object}  submitResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /submit [post]
func (h *ReservationHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		Name:      req.Name,
		Role:      req.Role,
		StartDate: req.StartTime,
		EndDate:   req.EndTime,
	})
	if err != nil {
		return err
	}
	metrics.ReservationsCreatedTotal.WithLabelValues(req.Role).Inc()

	return c.JSON(http.StatusOK, submitResponse{Status: "success"})
}
