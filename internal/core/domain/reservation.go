package domain

import (
	"errors"
	"time"
)

// ReservationStatus represents the lifecycle state of a workstation reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "Pending"
	StatusRunning   ReservationStatus = "Running"
	StatusCompleted ReservationStatus = "Completed"
)

var ErrReservationNotFound = errors.New("reservation not found")
var ErrForbidden = errors.New("access forbidden")

// KnownStatuses lists every status the boundary accepts.
var KnownStatuses = []ReservationStatus{StatusPending, StatusRunning, StatusCompleted}

// IsKnown reports whether s is one of the three recognised statuses.
func (s ReservationStatus) IsKnown() bool {
	for _, k := range KnownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// Reservation is the core aggregate: a request for exclusive use of a
// workstation over a calendar-date window.
//
// Lifecycle: created as Pending with no workstation and nil renewals.
// An administrator moves it to Running (assigning a workstation and dates)
// or marks it Completed, which deletes the record. Completed records are
// additionally purged before every dashboard read, so they are never
// observable from the outside.
//
// StartDate and EndDate are kept as YYYY-MM-DD strings on purpose: an
// unparseable date must survive a create or update unmodified (the duration
// policy is skipped, not the operation).
type Reservation struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	Name        string            `json:"name" bson:"name"`
	Role        string            `json:"role" bson:"role"`
	StartDate   string            `json:"start_date" bson:"start_date"`
	EndDate     string            `json:"end_date" bson:"end_date"`
	Status      ReservationStatus `json:"status" bson:"status"`
	Workstation string            `json:"workstation,omitempty" bson:"workstation,omitempty"`
	Renewals    *int              `json:"renewals,omitempty" bson:"renewals,omitempty"`
}

// Notice carries the reservation fields handed to the notification sender.
type Notice struct {
	ID        string
	Name      string
	Role      string
	StartDate string
	EndDate   string
	Status    ReservationStatus
}
