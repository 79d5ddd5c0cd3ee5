package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/config"
)

// queueReadyMsg signals that timer callbacks are waiting on the clock queue.
type queueReadyMsg struct{}

// ConfigReloadedMsg carries a config file reload into the program. Err is
// set when the new file failed to load.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// frameMsg advances transition colors while toasts animate.
type frameMsg time.Time

// waitForQueue blocks until q has callbacks to run or q is stopped. The
// model drains q in Update so callbacks run on the Bubble Tea goroutine, then
// waits again. A stopped queue yields no message.
func waitForQueue(q *clock.Queue) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-q.Ready():
			return queueReadyMsg{}
		case <-q.Done():
			return nil
		}
	}
}

func scheduleFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
