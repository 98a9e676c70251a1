package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/morice333/workstation-queue-dashboard/internal/api/metrics"
	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// DedupChecker abstracts the idempotency store (Redis). A nil checker
// disables deduplication.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, reservationID string) (bool, error)
	Mark(ctx context.Context, reservationID string) error
}

// envelope pairs a notice with a delivery id for log correlation.
type envelope struct {
	id     string
	notice domain.Notice
}

// Dispatcher routes reservation notices to a fixed set of workers using
// consistent hashing on the reservation id, preserving per-reservation
// ordering. Delivery is fire-and-forget: worker-side failures are logged
// and counted, never propagated.
type Dispatcher struct {
	workers []chan envelope
	sender  ports.NotificationSender
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.NotificationSender, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan envelope, numWorkers),
		sender:  sender,
		dedup:   dedup,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan envelope, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notice to the worker responsible for its reservation.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(notice domain.Notice) {
	i := d.shardIndex(notice.ID)
	d.workers[i] <- envelope{id: uuid.NewString(), notice: notice}
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a reservation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(reservationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(reservationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan envelope) {
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, env)
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, env envelope) {
	l := d.log.With().
		Str("notice_id", env.id).
		Str("reservation_id", env.notice.ID).
		Int("worker_id", workerID).
		Logger()

	if d.dedup != nil {
		isDup, err := d.dedup.IsDuplicate(ctx, env.notice.ID)
		if err != nil {
			l.Warn().Err(err).Msg("dedup check failed, delivering anyway")
		} else if isDup {
			l.Debug().Msg("duplicate notice skipped")
			metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
			return
		} else {
			metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	if err := d.sender.Send(ctx, env.notice); err != nil {
		l.Error().Err(err).Msg("notification delivery failed")
		metrics.NotificationsFailedTotal.Inc()
		return
	}

	if d.dedup != nil {
		if err := d.dedup.Mark(ctx, env.notice.ID); err != nil {
			l.Warn().Err(err).Msg("failed to set dedup key")
		}
	}

	l.Info().Msg("notification delivered")
	metrics.NotificationsSentTotal.Inc()
}
