package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Queue is a real-time Scheduler that never runs callbacks on the runtime's
// timer goroutines. A fired timer only enqueues its callback; the consumer
// runs queued callbacks with Drain (or Run) on its own goroutine.
//
// AfterFunc, Post and Stop are safe to call from any goroutine. Drain must
// only be called from the consumer.
type Queue struct {
	mu      sync.Mutex
	pending []*queuedTimer
	armed   map[*queuedTimer]struct{}
	signal  chan struct{}
	done    chan struct{}
	once    sync.Once
}

type queuedTimer struct {
	q       *Queue
	t       *time.Timer
	fn      func()
	stopped atomic.Bool
}

func (t *queuedTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	stopped := true
	if t.t != nil {
		stopped = t.t.Stop()
	}
	t.q.disarm(t)
	return stopped
}

// NewQueue constructs an empty queue.
func NewQueue() *Queue {
	return &Queue{
		armed:  make(map[*queuedTimer]struct{}),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (q *Queue) Now() time.Time {
	return time.Now()
}

func (q *Queue) AfterFunc(d time.Duration, fn func()) Timer {
	qt := &queuedTimer{q: q, fn: fn}

	q.mu.Lock()
	q.armed[qt] = struct{}{}
	q.mu.Unlock()

	qt.t = time.AfterFunc(d, func() {
		q.disarm(qt)
		q.enqueue(qt)
	})
	return qt
}

// Post hands fn to the consumer. It is how other goroutines (input readers,
// network handlers) get work onto the consumer goroutine.
func (q *Queue) Post(fn func()) {
	q.enqueue(&queuedTimer{q: q, fn: fn})
}

// Ready returns a channel that receives a value whenever callbacks are
// queued. Signals are coalesced; one receive may cover many callbacks.
func (q *Queue) Ready() <-chan struct{} {
	return q.signal
}

// Done returns a channel that is closed once Stop has been called.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Drain runs every queued callback on the calling goroutine and returns how
// many ran. Callbacks whose timer was stopped after firing are skipped.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, qt := range batch {
		if qt.stopped.Load() {
			continue
		}
		qt.stopped.Store(true)
		qt.fn()
		ran++
	}
	return ran
}

// Armed returns the number of timers that are scheduled but have not fired.
func (q *Queue) Armed() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.armed)
}

// Run drains the queue each time it is signalled until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
			q.Drain()
		}
	}
}

// Stop cancels every outstanding timer, discards queued callbacks and
// closes Done. It may be called more than once.
func (q *Queue) Stop() {
	q.once.Do(func() { close(q.done) })

	q.mu.Lock()
	armed := make([]*queuedTimer, 0, len(q.armed))
	for qt := range q.armed {
		armed = append(armed, qt)
	}
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, qt := range armed {
		qt.Stop()
	}
	for _, qt := range pending {
		qt.stopped.Store(true)
	}
}

func (q *Queue) enqueue(qt *queuedTimer) {
	q.mu.Lock()
	q.pending = append(q.pending, qt)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *Queue) disarm(qt *queuedTimer) {
	q.mu.Lock()
	delete(q.armed, qt)
	q.mu.Unlock()
}
