package toast

import (
	"time"

	"github.com/hay-kot/toaster/internal/core/notify"
)

const (
	// MaxStack is the default number of notifications shown at once.
	MaxStack = 8
	// GraceDelay is added to every auto-dismiss timer so the time a toast is
	// fully visible matches the requested duration despite the exit lead.
	GraceDelay = 300 * time.Millisecond
	// EnterDelay is how long a record stays in the entering phase.
	EnterDelay = 300 * time.Millisecond
	// ExitDelay is how long a record stays in the leaving phase.
	ExitDelay = 300 * time.Millisecond
)

// Config tunes the stack. The zero value of a delay makes that transition
// synchronous.
type Config struct {
	MaxStack        int
	DefaultDuration time.Duration
	Grace           time.Duration
	Enter           time.Duration
	Exit            time.Duration
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		MaxStack:        MaxStack,
		DefaultDuration: notify.DefaultDuration,
		Grace:           GraceDelay,
		Enter:           EnterDelay,
		Exit:            ExitDelay,
	}
}
