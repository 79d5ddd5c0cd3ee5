package toast

import (
	"sync"

	"github.com/hay-kot/toaster/internal/core/notify"
)

// Presenter is the rendering surface for the stack. The Controller calls it
// on every lifecycle edge; it never calls back into the Controller.
//
// Mount is followed by PlayEnter when a record is admitted. PlayExit is
// called when a record starts leaving, and Unmount when it is removed.
// Force-closed records go straight to Unmount.
type Presenter interface {
	Mount(r notify.Record)
	PlayEnter(r notify.Record)
	PlayExit(r notify.Record)
	Unmount(r notify.Record)
}

// NopPresenter discards every call.
type NopPresenter struct{}

func (NopPresenter) Mount(notify.Record)     {}
func (NopPresenter) PlayEnter(notify.Record) {}
func (NopPresenter) PlayExit(notify.Record)  {}
func (NopPresenter) Unmount(notify.Record)   {}

// PresenterOp names a Presenter call.
type PresenterOp string

const (
	OpMount     PresenterOp = "mount"
	OpPlayEnter PresenterOp = "enter"
	OpPlayExit  PresenterOp = "exit"
	OpUnmount   PresenterOp = "unmount"
)

// PresenterCall captures one Presenter call.
type PresenterCall struct {
	Op     PresenterOp
	Record notify.Record
}

// RecordingPresenter captures presenter calls for testing.
type RecordingPresenter struct {
	mu    sync.Mutex
	Calls []PresenterCall
}

func (p *RecordingPresenter) Mount(r notify.Record)     { p.record(OpMount, r) }
func (p *RecordingPresenter) PlayEnter(r notify.Record) { p.record(OpPlayEnter, r) }
func (p *RecordingPresenter) PlayExit(r notify.Record)  { p.record(OpPlayExit, r) }
func (p *RecordingPresenter) Unmount(r notify.Record)   { p.record(OpUnmount, r) }

// Ops returns the operations recorded for id, in call order.
func (p *RecordingPresenter) Ops(id int64) []PresenterOp {
	p.mu.Lock()
	defer p.mu.Unlock()

	var ops []PresenterOp
	for _, c := range p.Calls {
		if c.Record.ID == id {
			ops = append(ops, c.Op)
		}
	}
	return ops
}

func (p *RecordingPresenter) record(op PresenterOp, r notify.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, PresenterCall{Op: op, Record: r})
}
