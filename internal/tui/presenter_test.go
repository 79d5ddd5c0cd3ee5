package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/toast"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestToastPresenter_Progress(t *testing.T) {
	fake := clock.NewFake(epoch)
	p := NewToastPresenter(fake.Now)
	rec := notify.Record{ID: 7}

	_, _, ok := p.Progress(rec.ID, time.Second)
	assert.False(t, ok, "no transition yet")

	p.Mount(rec)
	p.PlayEnter(rec)
	fake.Advance(150 * time.Millisecond)

	op, progress, ok := p.Progress(rec.ID, 300*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, toast.OpPlayEnter, op)
	assert.InDelta(t, 0.5, progress, 0.001)

	fake.Advance(time.Second)
	_, progress, _ = p.Progress(rec.ID, 300*time.Millisecond)
	assert.InDelta(t, 1.0, progress, 0.001, "clamped")

	p.PlayExit(rec)
	op, progress, _ = p.Progress(rec.ID, 0)
	assert.Equal(t, toast.OpPlayExit, op)
	assert.InDelta(t, 1.0, progress, 0.001, "zero length is complete")
}

func TestToastPresenter_Unmount(t *testing.T) {
	p := NewToastPresenter(nil)
	rec := notify.Record{ID: 1}

	p.Mount(rec)
	p.PlayEnter(rec)
	assert.Equal(t, 1, p.Mounted())

	p.Unmount(rec)
	assert.Equal(t, 0, p.Mounted())
	_, _, ok := p.Progress(rec.ID, time.Second)
	assert.False(t, ok)
}
