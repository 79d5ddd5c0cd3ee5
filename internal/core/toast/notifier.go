package toast

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
)

// Notifier is the caller-facing API of the notification stack. One Notifier
// is created per application and shared by everything that raises toasts.
//
// Like the Controller it wraps, a Notifier is not safe for concurrent use.
type Notifier struct {
	store *Store
	ctrl  *Controller
	cfg   Config
}

// New creates a Notifier. Zero fields in cfg take their DefaultConfig values
// except the transition delays, where zero means synchronous.
func New(cfg Config, presenter Presenter, sched clock.Scheduler, logger zerolog.Logger) *Notifier {
	defaults := DefaultConfig()
	if cfg.MaxStack < 1 {
		cfg.MaxStack = defaults.MaxStack
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = defaults.DefaultDuration
	}

	store := NewStore(cfg.MaxStack)
	return &Notifier{
		store: store,
		ctrl:  NewController(store, presenter, sched, cfg, logger),
		cfg:   cfg,
	}
}

// Open shows a notification and returns its ID.
func (n *Notifier) Open(o notify.Options) int64 {
	rec, onClose := o.Normalize(n.cfg.DefaultDuration)
	return n.ctrl.Admit(&entry{rec: rec, onClose: onClose})
}

// Success opens a success notification.
func (n *Notifier) Success(message string, opts ...notify.Option) int64 {
	return n.openKind(notify.KindSuccess, message, opts)
}

// Info opens an info notification.
func (n *Notifier) Info(message string, opts ...notify.Option) int64 {
	return n.openKind(notify.KindInfo, message, opts)
}

// Warning opens a warning notification.
func (n *Notifier) Warning(message string, opts ...notify.Option) int64 {
	return n.openKind(notify.KindWarning, message, opts)
}

// Warn is an alias for Warning.
func (n *Notifier) Warn(message string, opts ...notify.Option) int64 {
	return n.Warning(message, opts...)
}

// Error opens an error notification.
func (n *Notifier) Error(message string, opts ...notify.Option) int64 {
	return n.openKind(notify.KindError, message, opts)
}

// Close dismisses id with its exit transition. Closing an unknown or already
// closing ID does nothing.
func (n *Notifier) Close(id int64) {
	n.ctrl.Close(id)
}

// ForceClose removes id immediately without an exit transition.
func (n *Notifier) ForceClose(id int64) {
	n.ctrl.ForceClose(id)
}

// Clear force-closes every live notification.
func (n *Notifier) Clear() {
	n.ctrl.Clear()
}

// All returns the live notifications in display order, oldest first.
func (n *Notifier) All() []notify.Record {
	return n.store.All()
}

// Get returns the live notification with the given ID.
func (n *Notifier) Get(id int64) (notify.Record, bool) {
	return n.store.Get(id)
}

// Len returns the number of live notifications.
func (n *Notifier) Len() int {
	return n.store.Len()
}

// Config returns the effective configuration.
func (n *Notifier) Config() Config {
	return n.cfg
}

// Subscribe routes every notification published on bus to n.
func (n *Notifier) Subscribe(bus *notify.Bus) {
	bus.Subscribe(func(o notify.Options) {
		n.Open(o)
	})
}

func (n *Notifier) openKind(kind notify.Kind, message string, opts []notify.Option) int64 {
	o := notify.Options{Kind: kind, Message: message}.Apply(opts...)
	o.Kind = kind
	o.Message = message
	return n.Open(o)
}
