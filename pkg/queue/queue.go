// Package queue provides the in-process FIFO buffer between the webhook
// ingestion boundary and the delivery worker. It is safe for concurrent
// producers with a single consumer, keeps strict enqueue order, and holds
// nothing across process restarts.
package queue

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pushrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/pushrelay/pkg/domain/model"
	"github.com/m-mizutani/pushrelay/pkg/domain/types"
)

// Queue is an unbounded FIFO. The zero value is not usable; construct with
// New.
type Queue struct {
	mu    sync.Mutex
	items []model.QueueItem

	// wake has capacity 1 and is signalled on every enqueue so a blocked
	// Dequeue can resume without polling.
	wake chan struct{}

	recentCap   int
	recentSet   map[types.DeliveryID]struct{}
	recentOrder []types.DeliveryID
}

var _ interfaces.EventQueue = (*Queue)(nil)

type Option func(*Queue)

// WithRecentIDCap enables deduplication of webhook deliveries by delivery
// ID, remembering at most n recent IDs. Items without a delivery ID are
// never deduplicated. n <= 0 leaves deduplication off.
func WithRecentIDCap(n int) Option {
	return func(x *Queue) {
		x.recentCap = n
	}
}

func New(options ...Option) *Queue {
	q := &Queue{
		wake: make(chan struct{}, 1),
	}
	for _, opt := range options {
		opt(q)
	}
	if q.recentCap > 0 {
		q.recentSet = make(map[types.DeliveryID]struct{}, q.recentCap)
	}
	return q
}

// Enqueue appends an item and never blocks. It returns false only when
// deduplication is enabled and the item's delivery ID was seen recently.
func (x *Queue) Enqueue(item model.QueueItem) bool {
	x.mu.Lock()
	if x.isDuplicate(item.DeliveryID()) {
		x.mu.Unlock()
		return false
	}
	x.items = append(x.items, item)
	x.mu.Unlock()

	select {
	case x.wake <- struct{}{}:
	default:
	}
	return true
}

// TryDequeue removes and returns the oldest item without blocking.
func (x *Queue) TryDequeue() (model.QueueItem, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if len(x.items) == 0 {
		return model.QueueItem{}, false
	}
	item := x.items[0]
	x.items = x.items[1:]
	return item, true
}

// Dequeue removes and returns the oldest item, suspending the caller until
// one is available or ctx is done.
func (x *Queue) Dequeue(ctx context.Context) (model.QueueItem, error) {
	for {
		if item, ok := x.TryDequeue(); ok {
			return item, nil
		}

		select {
		case <-ctx.Done():
			return model.QueueItem{}, goerr.Wrap(ctx.Err(), "queue dequeue cancelled")
		case <-x.wake:
		}
	}
}

func (x *Queue) Size() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.items)
}

// isDuplicate reports and records a delivery ID. Caller must hold mu.
func (x *Queue) isDuplicate(id types.DeliveryID) bool {
	if x.recentCap <= 0 || id == "" {
		return false
	}
	if _, ok := x.recentSet[id]; ok {
		return true
	}

	x.recentSet[id] = struct{}{}
	x.recentOrder = append(x.recentOrder, id)
	if len(x.recentOrder) > x.recentCap {
		oldest := x.recentOrder[0]
		x.recentOrder = x.recentOrder[1:]
		delete(x.recentSet, oldest)
	}
	return false
}
