// Package notify defines the notification records, kinds and options shared
// by the toast stack and its presenters.
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Kind represents the severity of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindSuccess, KindInfo, KindWarning, KindError}

// IsValid reports whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return true
	default:
		return false
	}
}

// ParseKind converts user input into a Kind. An empty string yields
// KindInfo and "warn" is accepted as an alias for KindWarning.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindInfo, nil
	case "warn":
		return KindWarning, nil
	default:
		if !k.IsValid() {
			return "", fmt.Errorf("unknown notification kind %q", s)
		}
		return k, nil
	}
}

// Phase is the lifecycle stage of a record.
type Phase string

const (
	PhaseEntering Phase = "entering"
	PhaseVisible  Phase = "visible"
	PhaseLeaving  Phase = "leaving"
	PhaseRemoved  Phase = "removed"
)

// Record is a snapshot of one live notification.
type Record struct {
	ID        int64
	Kind      Kind
	Title     string
	Message   string
	Duration  time.Duration // 0 means never auto-dismiss
	Closable  bool
	Phase     Phase
	CreatedAt time.Time
}

// Sticky reports whether the record is never auto-dismissed.
func (r Record) Sticky() bool {
	return r.Duration == 0
}
