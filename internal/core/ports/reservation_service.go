package ports

import (
	"context"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// CreateReservationInput carries all data needed to submit a reservation.
type CreateReservationInput struct {
	Name      string
	Role      string
	StartDate string
	EndDate   string
}

// UpdateStatusInput carries an administrator's status update. Workstation,
// StartDate, EndDate and Renewals are only applied when Workstation is
// non-empty; an empty Workstation means a status change alone.
type UpdateStatusInput struct {
	ID          string
	Status      domain.ReservationStatus
	Workstation string
	StartDate   string
	EndDate     string
	Renewals    *int
}

// ChartEntry is the role-coloured projection of a running reservation used
// by the dashboard chart.
type ChartEntry struct {
	Name        string `json:"name"`
	Workstation string `json:"workstation"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Renewals    string `json:"renewals"`
	Color       string `json:"color"`
}

// ReservationService defines the reservation lifecycle use cases.
//
// Listings are fresh queries each call. Callers that render a dashboard
// must invoke PurgeCompleted first so no Completed record is ever shown;
// the purge is an explicit step rather than a hidden side effect of a read.
type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	ListPending(ctx context.Context) ([]*domain.Reservation, error)
	ListRunning(ctx context.Context) ([]*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) error
	PurgeCompleted(ctx context.Context) (int64, error)
}
