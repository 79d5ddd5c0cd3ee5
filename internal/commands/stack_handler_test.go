package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/toast"
)

func TestStackHandler_serves_snapshot(t *testing.T) {
	queue := clock.NewQueue()
	t.Cleanup(queue.Stop)

	notifier := toast.New(instantConfig(), &toast.RecordingPresenter{}, queue, zerolog.Nop())
	notifier.Success("built", notify.WithTitle("CI"))
	notifier.Error("failed", notify.WithDuration(0))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = queue.Run(ctx) }()

	rec := httptest.NewRecorder()
	stackHandler(queue, notifier).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/toasts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap stackSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, toast.MaxStack, snap.Capacity)
	assert.Equal(t, 2, snap.Live)
	require.Len(t, snap.Toasts, 2)

	assert.Equal(t, int64(1), snap.Toasts[0].ID)
	assert.Equal(t, "CI", snap.Toasts[0].Title)
	assert.Equal(t, time.Hour.Milliseconds(), snap.Toasts[0].DurationMS)
	assert.Equal(t, notify.KindError, snap.Toasts[1].Kind)
	assert.Zero(t, snap.Toasts[1].DurationMS)
}

func TestStackHandler_gives_up_with_request(t *testing.T) {
	queue := clock.NewQueue()
	t.Cleanup(queue.Stop)
	notifier := toast.New(instantConfig(), &toast.RecordingPresenter{}, queue, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing drains the queue, so only the request context can end the wait.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/debug/toasts", nil).WithContext(ctx)
	stackHandler(queue, notifier).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
