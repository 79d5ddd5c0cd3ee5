// Package clock provides the scheduling primitives used to drive toast
// lifecycles. Callbacks scheduled through a Scheduler always run on a single
// consumer goroutine, so the code they call never needs its own locking.
package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer; false means it already fired or was already stopped.
	Stop() bool
}

// Scheduler schedules single-shot callbacks.
type Scheduler interface {
	// AfterFunc arranges for fn to run once after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
	// Now returns the scheduler's current time.
	Now() time.Time
}
