// Package toast implements the notification stack: an ordered, capacity
// bounded Store of live records, the Controller that owns their timers and
// phase transitions, and the Presenter contract used to display them.
package toast

import (
	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
)

// entry is the Controller-owned state behind a record.
type entry struct {
	rec     notify.Record
	onClose func()
	closing bool // onClose has been (or is being) invoked

	dismiss    clock.Timer // auto-dismiss
	transition clock.Timer // pending enter or exit completion
}

// Store holds live records in insertion order, newest at the tail.
type Store struct {
	max     int
	seq     int64
	entries []*entry
}

// NewStore creates a store holding at most capacity records. Values below
// one fall back to MaxStack.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = MaxStack
	}
	return &Store{max: capacity}
}

// Cap returns the store capacity.
func (s *Store) Cap() int {
	return s.max
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return len(s.entries)
}

// Enqueue assigns e a fresh ID and appends it. While the store is full the
// head is handed to evict, which is expected to remove it; if it does not,
// the head is dropped here so the loop always terminates.
func (s *Store) Enqueue(e *entry, evict func(id int64)) int64 {
	for len(s.entries) >= s.max {
		head := s.entries[0]
		if evict != nil {
			evict(head.rec.ID)
		}
		if len(s.entries) > 0 && s.entries[0] == head {
			s.entries = s.entries[1:]
		}
	}

	s.seq++
	e.rec.ID = s.seq
	s.entries = append(s.entries, e)
	return e.rec.ID
}

// Remove deletes the record with the given ID. It reports whether a record
// was removed; unknown IDs are ignored.
func (s *Store) Remove(id int64) bool {
	for i, e := range s.entries {
		if e.rec.ID == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the given ID.
func (s *Store) Get(id int64) (notify.Record, bool) {
	e, ok := s.get(id)
	if !ok {
		return notify.Record{}, false
	}
	return e.rec, true
}

// All returns a snapshot of live records in insertion order.
func (s *Store) All() []notify.Record {
	out := make([]notify.Record, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.rec
	}
	return out
}

func (s *Store) get(id int64) (*entry, bool) {
	for _, e := range s.entries {
		if e.rec.ID == id {
			return e, true
		}
	}
	return nil, false
}

// snapshot returns the live entries in insertion order, safe to iterate
// while entries are removed.
func (s *Store) snapshot() []*entry {
	out := make([]*entry, len(s.entries))
	copy(out, s.entries)
	return out
}
