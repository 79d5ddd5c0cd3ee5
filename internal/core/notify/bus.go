package notify

import (
	"fmt"
	"sync"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(Options)

// Bus is a synchronous in-process notification bus. It lets components raise
// notifications without holding a reference to the toast stack. Publish
// dispatches inline, so it must be called from the goroutine that owns the
// subscribers (the Bubble Tea Update loop, or a clock.Queue consumer).
type Bus struct {
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers.
func (b *Bus) Publish(o Options) {
	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(o)
	}
}

// Successf publishes a success notification.
func (b *Bus) Successf(format string, args ...any) {
	b.publishf(KindSuccess, format, args...)
}

// Infof publishes an info notification.
func (b *Bus) Infof(format string, args ...any) {
	b.publishf(KindInfo, format, args...)
}

// Warnf publishes a warning notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.publishf(KindWarning, format, args...)
}

// Errorf publishes an error notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.publishf(KindError, format, args...)
}

func (b *Bus) publishf(kind Kind, format string, args ...any) {
	b.Publish(Options{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}
