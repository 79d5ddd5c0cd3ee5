package notify

import "time"

// DefaultDuration is how long a notification stays up when the caller does
// not say otherwise.
const DefaultDuration = 5 * time.Second

// Options describes a notification to open. Nil pointer fields take their
// defaults; see Normalize.
type Options struct {
	Kind     Kind
	Title    string
	Message  string
	Duration *time.Duration // nil = DefaultDuration, 0 = never auto-dismiss
	Closable *bool          // nil = true
	OnClose  func()
}

// Option mutates Options. Used by the kind-specific helpers.
type Option func(*Options)

// WithTitle sets the title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithDuration sets the auto-dismiss duration. Zero disables auto-dismiss;
// negative values are treated as zero.
func WithDuration(d time.Duration) Option {
	return func(o *Options) {
		v := max(d, 0)
		o.Duration = &v
	}
}

// Sticky disables auto-dismiss.
func Sticky() Option {
	return WithDuration(0)
}

// NotClosable hides the explicit close affordance.
func NotClosable() Option {
	return func(o *Options) {
		closable := false
		o.Closable = &closable
	}
}

// OnClose registers a callback invoked once when the notification starts
// its removal.
func OnClose(fn func()) Option {
	return func(o *Options) { o.OnClose = fn }
}

// Apply returns a copy of o with opts applied in order.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Normalize fills every unset field. defaultDuration replaces the package
// DefaultDuration when positive.
func (o Options) Normalize(defaultDuration time.Duration) (Record, func()) {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}

	r := Record{
		Kind:     KindInfo,
		Title:    o.Title,
		Message:  o.Message,
		Duration: defaultDuration,
		Closable: true,
	}
	if k, err := ParseKind(string(o.Kind)); err == nil {
		r.Kind = k
	}
	if o.Duration != nil {
		r.Duration = max(*o.Duration, 0)
	}
	if o.Closable != nil {
		r.Closable = *o.Closable
	}

	onClose := o.OnClose
	if onClose == nil {
		onClose = func() {}
	}
	return r, onClose
}
