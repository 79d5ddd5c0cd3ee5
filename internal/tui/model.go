// Package tui implements the interactive toast playground: a full-screen
// Bubble Tea program that drives a toast.Notifier from the keyboard and
// renders its stack in the lower-right corner.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/config"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/toast"
)

// Options configures a Model.
type Options struct {
	// Scheduler delivers toast timers. A *clock.Queue (or nil, which creates
	// one) is drained from Update; other schedulers run callbacks themselves.
	Scheduler clock.Scheduler
	Bus       *notify.Bus
	Logger    zerolog.Logger
	// Warnings are shown as toasts when the program starts.
	Warnings []config.ValidationWarning
}

// Model is the main Bubble Tea model.
type Model struct {
	notifier  *toast.Notifier
	presenter *ToastPresenter
	toasts    *ToastView
	queue     *clock.Queue
	bus       *notify.Bus
	keys      keyMap
	warnings  []config.ValidationWarning

	theme    string
	width    int
	height   int
	pushed   int
	quitting bool
}

// New creates a new TUI model.
func New(cfg *config.Config, opts Options) Model {
	sched := opts.Scheduler
	if sched == nil {
		sched = clock.NewQueue()
	}
	queue, _ := sched.(*clock.Queue)

	bus := opts.Bus
	if bus == nil {
		bus = notify.NewBus()
	}

	presenter := NewToastPresenter(sched.Now)
	notifier := toast.New(cfg.ToastSettings(), presenter, sched, opts.Logger)
	notifier.Subscribe(bus)

	return Model{
		notifier:  notifier,
		presenter: presenter,
		toasts: NewToastView(notifier, presenter, ToastViewOptions{
			Width:    cfg.TUI.Width,
			Markdown: cfg.TUI.Markdown,
			Logger:   opts.Logger,
		}),
		queue:    queue,
		bus:      bus,
		keys:     defaultKeyMap(),
		warnings: opts.Warnings,
		theme:    cfg.TUI.Theme,
	}
}

// Notifier returns the notification stack driven by the model.
func (m Model) Notifier() *toast.Notifier {
	return m.notifier
}

// Init publishes startup warnings and starts listening for timer callbacks.
func (m Model) Init() tea.Cmd {
	for _, w := range m.warnings {
		m.bus.Publish(notify.Options{
			Kind:    notify.KindWarning,
			Title:   w.Category + ": " + w.Item,
			Message: w.Message,
		})
	}

	var cmds []tea.Cmd
	if m.queue != nil {
		cmds = append(cmds, waitForQueue(m.queue))
	}
	if cmd := m.ensureFrames(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case queueReadyMsg:
		m.queue.Drain()
		return m, tea.Batch(waitForQueue(m.queue), m.ensureFrames())

	case frameMsg:
		m.toasts.ticking = false
		return m, m.ensureFrames()

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, m.ensureFrames()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Success):
		m.push(notify.KindSuccess)
	case key.Matches(msg, m.keys.Info):
		m.push(notify.KindInfo)
	case key.Matches(msg, m.keys.Warning):
		m.push(notify.KindWarning)
	case key.Matches(msg, m.keys.Error):
		m.push(notify.KindError)
	case key.Matches(msg, m.keys.Sticky):
		m.pushed++
		m.notifier.Error("Stays until closed with **x**.",
			notify.WithTitle(fmt.Sprintf("Sticky #%d", m.pushed)),
			notify.Sticky(),
		)
	case key.Matches(msg, m.keys.Close):
		m.closeNewest()
	case key.Matches(msg, m.keys.Clear):
		m.notifier.Clear()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	default:
		return m, nil
	}

	return m, m.ensureFrames()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	if m.queue != nil {
		m.queue.Stop()
	}
	return m, tea.Quit
}

func (m *Model) push(kind notify.Kind) {
	m.pushed++
	samples := demoMessages[kind]
	m.notifier.Open(notify.Options{
		Kind:    kind,
		Title:   fmt.Sprintf("%s #%d", kindLabel(kind), m.pushed),
		Message: samples[(m.pushed-1)%len(samples)],
	})
}

// closeNewest closes the most recent closable toast that is not already
// leaving.
func (m Model) closeNewest() {
	records := m.notifier.All()
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if rec.Closable && rec.Phase != notify.PhaseLeaving {
			m.notifier.Close(rec.ID)
			return
		}
	}
}

func (m *Model) toggleTheme() {
	m.theme = styles.NextTheme(m.theme)
	palette, _ := styles.GetPalette(m.theme)
	styles.SetTheme(palette)
	m.toasts.ResetTheme()
	m.bus.Infof("Theme switched to %s", m.theme)
}

// applyConfig takes the display settings from a reloaded config. Stack
// limits and delays belong to the running notifier and apply on restart.
func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.bus.Publish(notify.Options{
			Kind:    notify.KindError,
			Title:   "Config reload failed",
			Message: msg.Err.Error(),
		})
		return
	}

	cfg := msg.Config
	if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
		m.theme = cfg.TUI.Theme
		styles.SetTheme(palette)
	}
	m.toasts.Configure(cfg.TUI.Width, cfg.TUI.Markdown)

	if cfg.ToastSettings() != m.notifier.Config() {
		m.bus.Warnf("Stack limits and delays take effect on restart")
	}
	m.bus.Infof("Configuration reloaded (%s)", m.theme)
}

// ensureFrames starts the frame ticker while any toast is mid-transition.
func (m Model) ensureFrames() tea.Cmd {
	if m.toasts.ticking || !m.toasts.Animating() {
		return nil
	}
	m.toasts.ticking = true
	return scheduleFrame()
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	background := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, m.renderMain())
	v := tea.NewView(m.toasts.Overlay(background, w, h))
	v.AltScreen = true
	return v
}

func (m Model) renderMain() string {
	header := styles.HeaderStyle.Render("toaster") + " " + styles.StatusStyle.Render(m.theme)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderStatus(),
		"",
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	var entering, visible, leaving int
	for _, rec := range m.notifier.All() {
		switch rec.Phase {
		case notify.PhaseEntering:
			entering++
		case notify.PhaseVisible:
			visible++
		case notify.PhaseLeaving:
			leaving++
		}
	}

	return styles.StatusStyle.Render(fmt.Sprintf("%d/%d live (%d entering, %d visible, %d leaving)",
		m.notifier.Len(), m.notifier.Config().MaxStack, entering, visible, leaving))
}

func (m Model) renderHelp() string {
	bindings := m.keys.helpBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpDescStyle.Render(" • "))
}

var demoMessages = map[notify.Kind][]string{
	notify.KindSuccess: {
		"Deployment finished in `42s`.",
		"Settings saved.",
	},
	notify.KindInfo: {
		"A new version is available.",
		"Syncing **3** repositories in the background.",
	},
	notify.KindWarning: {
		"Disk usage is above 80%.",
		"Token expires in *10 minutes*.",
	},
	notify.KindError: {
		"Connection refused by `api.internal:443`.",
		"Build failed. See the logs for details.",
	},
}
