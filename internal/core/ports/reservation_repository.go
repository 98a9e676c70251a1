package ports

import (
	"context"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
// Each call is individually atomic; the service layer composes them without
// any cross-call transaction.
type ReservationRepository interface {
	// Create inserts the reservation and fills in its assigned ID.
	Create(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ListByStatus returns reservations with the given status, ordered by
	// role ascending then creation time ascending.
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error)
	// ListAll returns every reservation, newest first (admin queue view).
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id string) error
	// DeleteByStatus removes every reservation with the given status and
	// reports how many were deleted.
	DeleteByStatus(ctx context.Context, status domain.ReservationStatus) (int64, error)
}
