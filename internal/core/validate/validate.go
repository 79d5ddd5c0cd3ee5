// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Message validates a notification message is non-empty after trimming whitespace.
func Message(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// NonNegative rejects negative durations.
func NonNegative(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("cannot be negative, got %s", d)
	}
	return nil
}

// AtLeast returns a validator rejecting values below minimum.
func AtLeast(minimum int) func(int) error {
	return func(v int) error {
		if v < minimum {
			return fmt.Errorf("must be at least %d, got %d", minimum, v)
		}
		return nil
	}
}

// OneOf returns a validator accepting only the given names.
func OneOf(kind string, names ...string) func(string) error {
	return func(v string) error {
		for _, n := range names {
			if v == n {
				return nil
			}
		}
		return fmt.Errorf("unknown %s %q (available: %s)", kind, v, strings.Join(names, ", "))
	}
}

// DurationField returns a criterio validator for non-negative durations.
func DurationField(field string, d time.Duration) error {
	return criterio.Run(field, d, NonNegative)
}
