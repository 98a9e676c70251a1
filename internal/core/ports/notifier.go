package ports

import (
	"context"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

// NotificationSender delivers a human-readable notice about a reservation
// to the configured recipient. Delivery is best-effort: the caller decides
// what to do with a returned error, and the reservation workflow never
// fails because of one.
type NotificationSender interface {
	Send(ctx context.Context, notice domain.Notice) error
}

// Notifier accepts notices for asynchronous delivery. Enqueue must not
// block the caller beyond the dispatcher's channel buffer and must never
// return an error; failures happen (and are logged) on the worker side.
type Notifier interface {
	Enqueue(notice domain.Notice)
}
