package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/morice333/workstation-queue-dashboard/internal/api/metrics"
	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
	mongodb "github.com/morice333/workstation-queue-dashboard/internal/infrastructure/db/mongo"
)

// AdminHandler handles the administrator routes: the full queue view,
// status updates and the datastore export/diagnostic endpoints.
type AdminHandler struct {
	service ports.ReservationService
	db      *mongo.Database
}

func NewAdminHandler(service ports.ReservationService, db *mongo.Database) *AdminHandler {
	return &AdminHandler{service: service, db: db}
}

// Dashboard handles GET /admin.
//
// @Summary      Admin queue view
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  adminDashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	purged, err := h.service.PurgeCompleted(ctx)
	if err != nil {
		return err
	}
	metrics.ReservationsPurgedTotal.Add(float64(purged))

	queue, err := h.service.ListAll(ctx)
	if err != nil {
		return err
	}
	pending, err := h.service.ListPending(ctx)
	if err != nil {
		return err
	}
	running, err := h.service.ListRunning(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminDashboardResponse{
		Queue:   toReservationResponses(queue),
		Pending: toReservationResponses(pending),
		Running: toReservationResponses(running),
		Chart:   chartEntries(running),
	})
}

// UpdateStatus handles POST /update_status/:id and redirects back to the
// admin view, mirroring the form-driven dashboard flow.
//
// @Summary      Update a reservation's status
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Security     SessionAuth
// @Param        id           path      string  true   "Reservation id"
// @Param        status       formData  string  true   "New status"  Enums(Pending, Running, Completed)
// @Param        workstation  formData  string  false  "Assigned workstation"
// @Param        start_time   formData  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_time     formData  string  false  "End date (YYYY-MM-DD)"
// @Param        renewals     formData  int     false  "Renewal count"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /update_status/{id} [post]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var form updateStatusForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var renewals *int
	if form.Renewals != "" {
		if n, err := strconv.Atoi(form.Renewals); err == nil {
			renewals = &n
		}
	}

	err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ID:          c.Param("id"),
		Status:      domain.ReservationStatus(form.Status),
		Workstation: form.Workstation,
		StartDate:   form.StartTime,
		EndDate:     form.EndTime,
		Renewals:    renewals,
	})
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Export handles GET /admin/export: a JSON dump of both collections, with
// password hashes projected out.
//
// @Summary      Export the datastore
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /admin/export [get]
func (h *AdminHandler) Export(c echo.Context) error {
	dump, err := mongodb.Dump(c.Request().Context(), h.db)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="workstation_queue_export.json"`)
	return c.JSON(http.StatusOK, dump)
}

// Diag handles GET /admin/diag: a datastore diagnostic report.
//
// @Summary      Datastore diagnostics
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]string
// @Router       /admin/diag [get]
func (h *AdminHandler) Diag(c echo.Context) error {
	return c.JSON(http.StatusOK, mongodb.Diagnose(c.Request().Context(), h.db))
}
