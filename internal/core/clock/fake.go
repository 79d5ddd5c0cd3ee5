package clock

import (
	"sort"
	"time"
)

// Fake is a manually advanced Scheduler for tests. Callbacks run on the
// goroutine that calls Advance.
type Fake struct {
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	fake    *Fake
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.fake.drop(t)
	return true
}

// NewFake returns a Fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.seq++
	t := &fakeTimer{
		fake: f,
		when: f.now.Add(d),
		seq:  f.seq,
		fn:   fn,
	}
	f.timers = append(f.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	return len(f.timers)
}

// Advance moves the clock forward by d, running every callback whose deadline
// falls inside the window in deadline order. Callbacks scheduled while
// advancing run too if they come due before the window closes.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		t := f.next(target)
		if t == nil {
			break
		}
		f.now = t.when
		t.fired = true
		f.drop(t)
		t.fn()
	}
	f.now = target
}

// next returns the earliest timer due at or before target.
func (f *Fake) next(target time.Time) *fakeTimer {
	if len(f.timers) == 0 {
		return nil
	}
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].when.Equal(f.timers[j].when) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].when.Before(f.timers[j].when)
	})
	if f.timers[0].when.After(target) {
		return nil
	}
	return f.timers[0]
}

func (f *Fake) drop(t *fakeTimer) {
	for i, other := range f.timers {
		if other == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}
