package tui

import (
	"time"

	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/toast"
)

type transition struct {
	op    toast.PresenterOp
	start time.Time
}

// ToastPresenter records when each toast started its enter or exit
// transition so the view can blend its colors frame by frame. All methods run
// on the Bubble Tea update goroutine.
type ToastPresenter struct {
	now         func() time.Time
	transitions map[int64]transition
	mounted     int
}

// NewToastPresenter returns a presenter reading time from now.
func NewToastPresenter(now func() time.Time) *ToastPresenter {
	if now == nil {
		now = time.Now
	}
	return &ToastPresenter{
		now:         now,
		transitions: make(map[int64]transition),
	}
}

func (p *ToastPresenter) Mount(notify.Record) {
	p.mounted++
}

func (p *ToastPresenter) PlayEnter(rec notify.Record) {
	p.transitions[rec.ID] = transition{op: toast.OpPlayEnter, start: p.now()}
}

func (p *ToastPresenter) PlayExit(rec notify.Record) {
	p.transitions[rec.ID] = transition{op: toast.OpPlayExit, start: p.now()}
}

func (p *ToastPresenter) Unmount(rec notify.Record) {
	delete(p.transitions, rec.ID)
	p.mounted--
}

// Mounted returns the number of toasts currently mounted.
func (p *ToastPresenter) Mounted() int {
	return p.mounted
}

// Progress reports how far the toast with the given ID is through its current
// transition, in [0, 1]. A zero or negative length counts as complete.
// ok is false when no transition was ever started for id.
func (p *ToastPresenter) Progress(id int64, length time.Duration) (op toast.PresenterOp, progress float64, ok bool) {
	tr, ok := p.transitions[id]
	if !ok {
		return "", 0, false
	}
	if length <= 0 {
		return tr.op, 1, true
	}

	progress = float64(p.now().Sub(tr.start)) / float64(length)
	return tr.op, min(max(progress, 0), 1), true
}
