package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides notification idempotency checks backed by Redis,
// so a re-submitted reservation does not notify the recipient twice.
// Key format: notice:<reservation_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a notice for this reservation was already sent.
func (d *DedupChecker) IsDuplicate(ctx context.Context, reservationID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(reservationID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a notice for this reservation went out (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, reservationID string) error {
	return d.client.Set(ctx, d.key(reservationID), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(reservationID string) string {
	return fmt.Sprintf("notice:%s", reservationID)
}
