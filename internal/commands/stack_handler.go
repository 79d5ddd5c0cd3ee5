package commands

import (
	"net/http"
	"time"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/toast"
	"github.com/hay-kot/toaster/pkg/iojson"
)

type stackEntry struct {
	ID         int64        `json:"id"`
	Kind       notify.Kind  `json:"kind"`
	Title      string       `json:"title,omitempty"`
	Message    string       `json:"message"`
	DurationMS int64        `json:"duration_ms"`
	Closable   bool         `json:"closable"`
	Phase      notify.Phase `json:"phase"`
	CreatedAt  time.Time    `json:"created_at"`
}

type stackSnapshot struct {
	Capacity int          `json:"capacity"`
	Live     int          `json:"live"`
	Toasts   []stackEntry `json:"toasts"`
}

// stackHandler serves the live stack as JSON. The notifier is only touched
// from the queue's consumer, so the read is posted there and awaited.
func stackHandler(queue *clock.Queue, notifier *toast.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := make(chan stackSnapshot, 1)
		queue.Post(func() {
			records := notifier.All()
			snap := stackSnapshot{
				Capacity: notifier.Config().MaxStack,
				Live:     len(records),
				Toasts:   make([]stackEntry, 0, len(records)),
			}
			for _, rec := range records {
				snap.Toasts = append(snap.Toasts, stackEntry{
					ID:         rec.ID,
					Kind:       rec.Kind,
					Title:      rec.Title,
					Message:    rec.Message,
					DurationMS: rec.Duration.Milliseconds(),
					Closable:   rec.Closable,
					Phase:      rec.Phase,
					CreatedAt:  rec.CreatedAt,
				})
			}
			result <- snap
		})

		select {
		case snap := <-result:
			w.Header().Set("Content-Type", "application/json")
			_ = iojson.WriteWith(w, w, snap)
		case <-r.Context().Done():
			http.Error(w, "stack unavailable", http.StatusServiceUnavailable)
		}
	})
}
