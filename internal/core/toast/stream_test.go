package toast

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
)

func decodeEvents(t *testing.T, out string) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}
	return events
}

func TestStreamPresenter_writes_lifecycle(t *testing.T) {
	var buf bytes.Buffer
	fake := clock.NewFake(epoch)
	presenter := NewStreamPresenter(&buf, fake.Now)
	n := New(DefaultConfig(), presenter, fake, zerolog.Nop())

	id := n.Error("failed", notify.WithTitle("Deploy"), notify.Sticky())
	fake.Advance(EnterDelay)
	n.Close(id)
	fake.Advance(ExitDelay)

	require.NoError(t, presenter.Err())
	events := decodeEvents(t, buf.String())
	require.Len(t, events, 4)

	wantOps := []PresenterOp{OpMount, OpPlayEnter, OpPlayExit, OpUnmount}
	wantPhases := []notify.Phase{notify.PhaseEntering, notify.PhaseEntering, notify.PhaseLeaving, notify.PhaseRemoved}
	for i, ev := range events {
		assert.Equal(t, wantOps[i], ev.Event)
		assert.Equal(t, wantPhases[i], ev.Phase)
		assert.Equal(t, id, ev.ID)
		assert.Equal(t, notify.KindError, ev.Kind)
		assert.Equal(t, "Deploy", ev.Title)
	}
	assert.True(t, epoch.Add(EnterDelay+ExitDelay).Equal(events[3].At))
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("closed pipe")
}

func TestStreamPresenter_stops_after_write_error(t *testing.T) {
	w := &failingWriter{}
	p := NewStreamPresenter(w, nil)

	p.Mount(notify.Record{ID: 1})
	p.Unmount(notify.Record{ID: 1})

	require.Error(t, p.Err())
	assert.Equal(t, 1, w.calls)
}
