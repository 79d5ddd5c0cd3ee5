package toast

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/hay-kot/toaster/internal/core/notify"
)

// Event is one presenter call as written by StreamPresenter.
type Event struct {
	Event    PresenterOp  `json:"event"`
	ID       int64        `json:"id"`
	Kind     notify.Kind  `json:"kind"`
	Phase    notify.Phase `json:"phase"`
	Title    string       `json:"title,omitempty"`
	Message  string       `json:"message,omitempty"`
	Closable bool         `json:"closable"`
	At       time.Time    `json:"at"`
}

// StreamPresenter writes every lifecycle edge as a JSON line. It is the
// headless rendering surface used by scripts and the feed command.
type StreamPresenter struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
	err error
}

// NewStreamPresenter writes events to w, stamping them with now. A nil now
// uses time.Now.
func NewStreamPresenter(w io.Writer, now func() time.Time) *StreamPresenter {
	if now == nil {
		now = time.Now
	}
	return &StreamPresenter{enc: json.NewEncoder(w), now: now}
}

func (p *StreamPresenter) Mount(r notify.Record)     { p.write(OpMount, r) }
func (p *StreamPresenter) PlayEnter(r notify.Record) { p.write(OpPlayEnter, r) }
func (p *StreamPresenter) PlayExit(r notify.Record)  { p.write(OpPlayExit, r) }
func (p *StreamPresenter) Unmount(r notify.Record)   { p.write(OpUnmount, r) }

// Err returns the first write error, if any. Writing stops after an error.
func (p *StreamPresenter) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *StreamPresenter) write(op PresenterOp, r notify.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return
	}

	p.err = p.enc.Encode(Event{
		Event:    op,
		ID:       r.ID,
		Kind:     r.Kind,
		Phase:    r.Phase,
		Title:    r.Title,
		Message:  r.Message,
		Closable: r.Closable,
		At:       p.now().UTC(),
	})
}
