package handler

import (
	"time"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
)

// submitRequest is the body of POST /submit. Role is deliberately free
// text: unrecognised roles fall into the default duration bucket instead
// of being rejected.
type submitRequest struct {
	Name      string `json:"name"      validate:"required"`
	Role      string `json:"role"      validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

// updateStatusForm is the form body of POST /update_status/:id. Status is
// constrained to the three known values at the boundary; any transition
// between non-terminal statuses is allowed.
type updateStatusForm struct {
	Status      string `form:"status"      validate:"required,oneof=Pending Running Completed"`
	Workstation string `form:"workstation"`
	StartTime   string `form:"start_time"`
	EndTime     string `form:"end_time"`
	Renewals    string `form:"renewals"`
}

// submitResponse mirrors the legacy contract of the submit endpoint.
type submitResponse struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	Workstation string    `json:"workstation,omitempty"`
	Renewals    *int      `json:"renewals,omitempty"`
}

// dashboardResponse is the requester view: pending and running queues plus
// the chart projection of the running ones.
type dashboardResponse struct {
	Pending []reservationResponse `json:"pending"`
	Running []reservationResponse `json:"running"`
	Chart   []ports.ChartEntry    `json:"chart"`
}

// adminDashboardResponse adds the full queue, newest first.
type adminDashboardResponse struct {
	Queue   []reservationResponse `json:"queue"`
	Pending []reservationResponse `json:"pending"`
	Running []reservationResponse `json:"running"`
	Chart   []ports.ChartEntry    `json:"chart"`
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Name:        r.Name,
		Role:        r.Role,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      string(r.Status),
		Workstation: r.Workstation,
		Renewals:    r.Renewals,
	}
}

func toReservationResponses(rs []*domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResponse(r))
	}
	return out
}
