package loop

import (
	"sync"
	"time"
)

// Callback receives the timestamp of the display refresh it runs in.
type Callback func(now time.Duration)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler is a display-synchronized frame primitive.
type Scheduler interface {
	RequestFrame(cb Callback) Handle
	CancelFrame(h Handle)
}

type pending struct {
	handle Handle
	cb     Callback
}

// Queue is a Scheduler flushed by the host once per display refresh.
// Callbacks requested during a flush run on the following flush.
type Queue struct {
	mu      sync.Mutex
	next    Handle
	pending []pending
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) RequestFrame(cb Callback) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, pending{handle: q.next, cb: cb})
	return q.next
}

func (q *Queue) CancelFrame(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Len returns the number of callbacks waiting for the next flush.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs every callback queued before the call, in request order.
// It returns how many ran.
func (q *Queue) Flush(now time.Duration) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, p := range batch {
		p.cb(now)
	}
	return len(batch)
}
