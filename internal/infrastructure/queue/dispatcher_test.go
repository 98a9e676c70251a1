package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
)

type recordingSender struct {
	mu    sync.Mutex
	sent  []domain.Notice
	errOn string
	done  chan struct{}
}

func newRecordingSender() *recordingSender {
	return &recordingSender{done: make(chan struct{}, 16)}
}

func (s *recordingSender) Send(_ context.Context, n domain.Notice) error {
	defer func() { s.done <- struct{}{} }()
	if s.errOn != "" && n.ID == s.errOn {
		return errors.New("delivery refused")
	}
	s.mu.Lock()
	s.sent = append(s.sent, n)
	s.mu.Unlock()
	return nil
}

func (s *recordingSender) sentNotices() []domain.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notice, len(s.sent))
	copy(out, s.sent)
	return out
}

type stubDedup struct {
	mu     sync.Mutex
	seen   map[string]bool
	marked []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[id], nil
}

func (d *stubDedup) Mark(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[id] = true
	d.marked = append(d.marked, id)
	return nil
}

func waitForDelivery(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery attempt")
	}
}

func TestDispatcherDelivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newRecordingSender()
	d := NewDispatcher(2, sender, nil, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.Notice{ID: "res-1", Name: "alice", Status: domain.StatusPending})
	waitForDelivery(t, sender.done)

	sent := sender.sentNotices()
	if len(sent) != 1 {
		t.Fatalf("sent %d notices, want 1", len(sent))
	}
	if sent[0].ID != "res-1" {
		t.Errorf("notice id = %q", sent[0].ID)
	}
}

func TestDispatcherSkipsDuplicates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newRecordingSender()
	dedup := newStubDedup()
	d := NewDispatcher(1, sender, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.Notice{ID: "res-1"})
	waitForDelivery(t, sender.done)

	// Second notice for the same reservation is dropped before Send.
	d.Enqueue(domain.Notice{ID: "res-1"})
	d.Enqueue(domain.Notice{ID: "res-2"})
	waitForDelivery(t, sender.done)

	sent := sender.sentNotices()
	if len(sent) != 2 {
		t.Fatalf("sent %d notices, want 2", len(sent))
	}
	if sent[0].ID != "res-1" || sent[1].ID != "res-2" {
		t.Errorf("sent = %v", sent)
	}
}

func TestDispatcherDoesNotMarkFailedDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newRecordingSender()
	sender.errOn = "res-1"
	dedup := newStubDedup()
	d := NewDispatcher(1, sender, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.Notice{ID: "res-1"})
	waitForDelivery(t, sender.done)

	dedup.mu.Lock()
	marked := len(dedup.marked)
	dedup.mu.Unlock()
	if marked != 0 {
		t.Errorf("failed delivery was marked as sent")
	}
}

func TestShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingSender(), nil, zerolog.Nop())

	for _, id := range []string{"a", "res-42", "6523ab"} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%q) unstable: %d then %d", id, first, got)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shardIndex(%q) = %d out of range", id, first)
		}
	}
}
