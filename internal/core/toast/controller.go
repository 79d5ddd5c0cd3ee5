package toast

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
)

// Controller owns record timing and phase transitions. It is the only
// writer of an entry's phase and timer handles.
//
// A Controller is not safe for concurrent use. Every method, and every
// callback delivered by its Scheduler, must run on the same goroutine.
type Controller struct {
	store     *Store
	presenter Presenter
	sched     clock.Scheduler
	cfg       Config
	log       zerolog.Logger
}

// NewController wires a controller to its store, presenter and scheduler.
// A nil presenter or scheduler is a programming error and panics.
func NewController(store *Store, presenter Presenter, sched clock.Scheduler, cfg Config, logger zerolog.Logger) *Controller {
	if presenter == nil {
		panic("toast: nil presenter")
	}
	if sched == nil {
		panic("toast: nil scheduler")
	}
	if store == nil {
		store = NewStore(cfg.MaxStack)
	}
	return &Controller{
		store:     store,
		presenter: presenter,
		sched:     sched,
		cfg:       cfg,
		log:       logger,
	}
}

// Admit enqueues e, evicting the oldest records to make room, and starts
// its lifecycle. It returns the assigned ID.
func (c *Controller) Admit(e *entry) int64 {
	id := c.store.Enqueue(e, func(head int64) {
		c.log.Debug().Int64("id", head).Msg("evicting oldest toast")
		c.ForceClose(head)
	})

	e.rec.Phase = notify.PhaseEntering
	e.rec.CreatedAt = c.sched.Now()

	c.log.Debug().
		Int64("id", id).
		Str("kind", string(e.rec.Kind)).
		Dur("duration", e.rec.Duration).
		Msg("toast admitted")

	c.presenter.Mount(e.rec)
	c.presenter.PlayEnter(e.rec)

	if c.cfg.Enter > 0 {
		e.transition = c.sched.AfterFunc(c.cfg.Enter, func() { c.finishEnter(e) })
	} else {
		e.rec.Phase = notify.PhaseVisible
	}

	if e.rec.Duration > 0 {
		e.dismiss = c.sched.AfterFunc(e.rec.Duration+c.cfg.Grace, func() { c.expire(e) })
	}

	return id
}

// Close starts the removal sequence for id: timers are cancelled, onClose
// runs, the record enters the leaving phase, and it is removed once the exit
// transition completes. Unknown IDs and records already closing are ignored.
func (c *Controller) Close(id int64) {
	e, ok := c.store.get(id)
	if !ok || e.closing {
		return
	}

	c.stopTimers(e)
	c.runOnClose(e)

	// onClose may have force-closed or evicted this record.
	if current, ok := c.store.get(id); !ok || current != e {
		return
	}

	e.rec.Phase = notify.PhaseLeaving
	c.log.Debug().Int64("id", id).Msg("toast leaving")
	c.presenter.PlayExit(e.rec)

	if c.cfg.Exit > 0 {
		e.transition = c.sched.AfterFunc(c.cfg.Exit, func() { c.finishExit(e) })
		return
	}
	c.remove(e)
}

// ForceClose removes id immediately, skipping the exit transition. onClose
// runs if the record had not started closing yet.
func (c *Controller) ForceClose(id int64) {
	e, ok := c.store.get(id)
	if !ok {
		return
	}

	c.stopTimers(e)
	if !e.closing {
		c.runOnClose(e)
	}
	c.remove(e)
}

// Clear force-closes every live record in insertion order.
func (c *Controller) Clear() {
	for _, e := range c.store.snapshot() {
		c.ForceClose(e.rec.ID)
	}
}

func (c *Controller) finishEnter(e *entry) {
	if !c.owns(e) || e.rec.Phase != notify.PhaseEntering {
		return
	}
	e.transition = nil
	e.rec.Phase = notify.PhaseVisible
}

func (c *Controller) expire(e *entry) {
	if !c.owns(e) {
		return
	}
	e.dismiss = nil
	c.log.Debug().Int64("id", e.rec.ID).Msg("toast expired")
	c.Close(e.rec.ID)
}

func (c *Controller) finishExit(e *entry) {
	if !c.owns(e) || e.rec.Phase != notify.PhaseLeaving {
		return
	}
	e.transition = nil
	c.remove(e)
}

// owns reports whether e is still the live entry for its ID.
func (c *Controller) owns(e *entry) bool {
	current, ok := c.store.get(e.rec.ID)
	return ok && current == e
}

func (c *Controller) remove(e *entry) {
	// A removed record must never be reachable from a timer.
	c.stopTimers(e)
	if !c.store.Remove(e.rec.ID) {
		return
	}
	e.rec.Phase = notify.PhaseRemoved
	c.log.Debug().Int64("id", e.rec.ID).Msg("toast removed")
	c.presenter.Unmount(e.rec)
}

func (c *Controller) stopTimers(e *entry) {
	if e.dismiss != nil {
		e.dismiss.Stop()
		e.dismiss = nil
	}
	if e.transition != nil {
		e.transition.Stop()
		e.transition = nil
	}
}

func (c *Controller) runOnClose(e *entry) {
	e.closing = true
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().
				Int64("id", e.rec.ID).
				Interface("panic", r).
				Msg("toast onClose panicked")
		}
	}()
	e.onClose()
}
