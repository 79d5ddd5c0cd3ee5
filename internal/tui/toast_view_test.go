package tui

import (
	"strings"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/toaster/internal/core/clock"
	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/toast"
	"github.com/hay-kot/toaster/pkg/tuitest"
)

func newTestView(t *testing.T, markdown bool) (*ToastView, *toast.Notifier, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(epoch)
	p := NewToastPresenter(fake.Now)
	n := toast.New(toast.DefaultConfig(), p, fake, zerolog.Nop())
	v := NewToastView(n, p, ToastViewOptions{Width: 40, Markdown: markdown, Logger: zerolog.Nop()})
	return v, n, fake
}

func TestToastView_View_empty(t *testing.T) {
	v, _, _ := newTestView(t, false)
	assert.Empty(t, v.View())
	assert.False(t, v.Animating())
}

func TestToastView_View_renders_each_kind(t *testing.T) {
	tests := []struct {
		kind notify.Kind
		icon string
	}{
		{notify.KindSuccess, styles.IconNotifySuccess},
		{notify.KindInfo, styles.IconNotifyInfo},
		{notify.KindWarning, styles.IconNotifyWarning},
		{notify.KindError, styles.IconNotifyError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			v, n, _ := newTestView(t, false)

			n.Open(notify.Options{Kind: tt.kind, Title: "Heads up", Message: "test msg"})

			out := tuitest.StripANSI(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "Heads up")
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_stacks_oldest_first(t *testing.T) {
	v, n, _ := newTestView(t, false)

	n.Info("first")
	n.Error("second")

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_close_glyph_only_when_closable(t *testing.T) {
	v, n, _ := newTestView(t, false)

	n.Info("closable")
	assert.Contains(t, v.View(), styles.IconClose)

	n.Clear()
	n.Info("pinned", notify.NotClosable())
	assert.NotContains(t, v.View(), styles.IconClose)
}

func TestToastView_untitled_uses_kind_label(t *testing.T) {
	v, n, _ := newTestView(t, false)

	n.Warning("disk filling up")

	assert.Contains(t, tuitest.StripANSI(v.View()), "Warning")
}

func TestToastView_markdown_body(t *testing.T) {
	v, n, _ := newTestView(t, true)

	n.Success("build **passed**")

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "passed")
	assert.NotContains(t, out, "**")
}

func TestToastView_Animating_follows_phases(t *testing.T) {
	v, n, fake := newTestView(t, false)

	id := n.Info("hello")
	assert.True(t, v.Animating(), "entering")

	fake.Advance(toast.EnterDelay)
	assert.False(t, v.Animating(), "visible")

	n.Close(id)
	assert.True(t, v.Animating(), "leaving")

	fake.Advance(toast.ExitDelay)
	assert.False(t, v.Animating())
	assert.Empty(t, v.View())
}

func TestToastView_Overlay_anchors_lower_right(t *testing.T) {
	v, n, _ := newTestView(t, false)
	const w, h = 80, 24

	background := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, "main content")
	assert.Equal(t, background, v.Overlay(background, w, h), "no toasts leaves background alone")

	n.Info("hello overlay")
	out := v.Overlay(background, w, h)

	lines := tuitest.Lines(out)
	assert.Contains(t, lines[0], "main content")
	assert.Equal(t, h, lipgloss.Height(out))

	toastRow := -1
	for i, line := range lines {
		if strings.Contains(line, "hello overlay") {
			toastRow = i
		}
	}
	require.NotEqual(t, -1, toastRow)
	assert.Greater(t, toastRow, h/2, "toast sits near the bottom")
	assert.Greater(t, strings.Index(lines[toastRow], "hello overlay"), w/3, "toast sits on the right")
}

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	start, _ := colorful.MakeColor(blend(from, to, 0))
	end, _ := colorful.MakeColor(blend(from, to, 1))

	assert.Equal(t, "#000000", start.Hex())
	assert.Equal(t, "#ffffff", end.Hex())
}
