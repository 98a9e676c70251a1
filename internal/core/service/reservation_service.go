package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
)

// ReservationService orchestrates the reservation lifecycle: it applies the
// duration policy on every create and date-changing update, persists through
// the repository, and hands new requests to the notifier for best-effort
// delivery.
type ReservationService struct {
	repo     ports.ReservationRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, notifier ports.Notifier, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, notifier: notifier, logger: logger}
}

// Create persists a new Pending reservation. The end date is clamped to the
// requester role's maximum; if either date fails to parse the raw end date
// is kept and the failure is logged, not propagated. The notification is
// enqueued fire-and-forget: its outcome never affects the result.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	end, err := domain.ClampEnd(input.Role, input.StartDate, input.EndDate)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("role", input.Role).
			Msg("date parse failed, skipping duration clamp")
	}

	reservation := &domain.Reservation{
		CreatedAt: time.Now().UTC(),
		Name:      input.Name,
		Role:      input.Role,
		StartDate: input.StartDate,
		EndDate:   end,
		Status:    domain.StatusPending,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info().
		Str("id", reservation.ID).
		Str("role", reservation.Role).
		Str("start", reservation.StartDate).
		Str("end", reservation.EndDate).
		Msg("reservation created")

	s.notifier.Enqueue(domain.Notice{
		ID:        reservation.ID,
		Name:      reservation.Name,
		Role:      reservation.Role,
		StartDate: reservation.StartDate,
		EndDate:   reservation.EndDate,
		Status:    reservation.Status,
	})

	return reservation, nil
}

// ListPending returns all Pending reservations ordered by role ascending
// then creation time ascending.
func (s *ReservationService) ListPending(ctx context.Context) ([]*domain.Reservation, error) {
	return s.listOrdered(ctx, domain.StatusPending)
}

// ListRunning returns all Running reservations with the same ordering.
func (s *ReservationService) ListRunning(ctx context.Context) ([]*domain.Reservation, error) {
	return s.listOrdered(ctx, domain.StatusRunning)
}

// listOrdered enforces the listing order (role ascending, then creation
// time ascending) regardless of what the repository returns.
func (s *ReservationService) listOrdered(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	out, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// ListAll returns the full queue, newest first.
func (s *ReservationService) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus applies an administrator's decision to a single reservation.
//
//   - Completed deletes the record unconditionally; any supplied
//     workstation, dates or renewals are ignored.
//   - Otherwise the status is set. A non-empty workstation additionally
//     updates workstation, dates and renewals, with the end date re-clamped
//     against the record's existing role (parse failure keeps the supplied
//     end unchanged).
//
// Concurrent updates to the same id are last-write-wins; there is no
// version check.
func (s *ReservationService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) error {
	reservation, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if input.Status == domain.StatusCompleted {
		if err := s.repo.Delete(ctx, reservation.ID); err != nil {
			return fmt.Errorf("delete completed reservation: %w", err)
		}
		s.logger.Info().Str("id", reservation.ID).Msg("reservation completed and removed")
		return nil
	}

	reservation.Status = input.Status
	if input.Workstation != "" {
		end, err := domain.ClampEnd(reservation.Role, input.StartDate, input.EndDate)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("id", reservation.ID).
				Str("role", reservation.Role).
				Msg("date parse failed, skipping duration clamp")
		}
		reservation.Workstation = input.Workstation
		reservation.StartDate = input.StartDate
		reservation.EndDate = end
		reservation.Renewals = input.Renewals
	}

	if err := s.repo.Update(ctx, reservation); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info().
		Str("id", reservation.ID).
		Str("status", string(reservation.Status)).
		Str("workstation", reservation.Workstation).
		Msg("reservation updated")

	return nil
}

// PurgeCompleted removes every Completed reservation. It is idempotent and
// must run before any dashboard read so Completed records are never shown.
func (s *ReservationService) PurgeCompleted(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("purge completed reservations: %w", err)
	}
	if n > 0 {
		s.logger.Info().Int64("count", n).Msg("purged completed reservations")
	}
	return n, nil
}
