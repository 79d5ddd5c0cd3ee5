package tui

import (
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/hay-kot/toaster/internal/core/notify"
	"github.com/hay-kot/toaster/internal/core/styles"
	"github.com/hay-kot/toaster/internal/core/toast"
)

// ToastView renders the notification stack and composites it as an overlay
// anchored to the lower-right corner.
type ToastView struct {
	notifier  *toast.Notifier
	presenter *ToastPresenter
	width     int
	markdown  bool
	logger    zerolog.Logger

	renderer *glamour.TermRenderer
	bodies   map[int64]string // rendered markdown by record ID
	ticking  bool             // a frame tick is scheduled
}

// ToastViewOptions configures a ToastView.
type ToastViewOptions struct {
	Width    int
	Markdown bool
	Logger   zerolog.Logger
}

func NewToastView(n *toast.Notifier, p *ToastPresenter, opts ToastViewOptions) *ToastView {
	width := opts.Width
	if width <= 0 {
		width = defaultToastWidth
	}
	return &ToastView{
		notifier:  n,
		presenter: p,
		width:     width,
		markdown:  opts.Markdown,
		logger:    opts.Logger,
		bodies:    make(map[int64]string),
	}
}

// Configure applies new width and markdown settings.
func (v *ToastView) Configure(width int, markdown bool) {
	if width <= 0 {
		width = defaultToastWidth
	}
	v.width = width
	v.markdown = markdown
	v.ResetTheme()
}

// ResetTheme drops cached markdown so bodies pick up the active palette.
func (v *ToastView) ResetTheme() {
	v.renderer = nil
	clear(v.bodies)
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	records := v.notifier.All()
	v.prune(records)
	if len(records) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(records))
	for _, rec := range records {
		rendered = append(rendered, v.renderToast(rec))
	}

	return strings.Join(rendered, "\n")
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}

// Animating reports whether any toast is mid-transition.
func (v *ToastView) Animating() bool {
	for _, rec := range v.notifier.All() {
		if rec.Phase == notify.PhaseEntering || rec.Phase == notify.PhaseLeaving {
			return true
		}
	}
	return false
}

func (v *ToastView) renderToast(rec notify.Record) string {
	accent := v.accent(rec)
	style := styles.ToastStyle(rec.Kind).
		BorderForeground(accent).
		Width(v.width)

	var header strings.Builder
	header.WriteString(lipgloss.NewStyle().Foreground(accent).Render(styles.KindIcon(rec.Kind)))
	header.WriteString(" ")
	if rec.Title != "" {
		header.WriteString(styles.ToastTitleStyle.Render(rec.Title))
	} else {
		header.WriteString(styles.ToastTitleStyle.Render(kindLabel(rec.Kind)))
	}
	if rec.Closable {
		header.WriteString("  ")
		header.WriteString(styles.ToastCloseStyle.Render(styles.IconClose))
	}

	lines := []string{header.String()}
	if body := v.body(rec); body != "" {
		lines = append(lines, body)
	}

	content := strings.Join(lines, "\n")
	if rec.Phase != notify.PhaseVisible {
		style = style.Faint(true)
	}
	return style.Render(content)
}

// accent blends the kind color in from the surface color while entering and
// back out while leaving.
func (v *ToastView) accent(rec notify.Record) color.Color {
	target := styles.KindColor(rec.Kind)

	length := v.notifier.Config().Enter
	if rec.Phase == notify.PhaseLeaving {
		length = v.notifier.Config().Exit
	}

	op, progress, ok := v.presenter.Progress(rec.ID, length)
	switch {
	case !ok, rec.Phase == notify.PhaseVisible:
		return target
	case op == toast.OpPlayExit:
		progress = 1 - progress
	}

	return blend(styles.ColorSurface, target, progress)
}

func blend(from, to color.Color, t float64) color.Color {
	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(to)
	if !okA || !okB {
		return to
	}
	return a.BlendLab(b, t).Clamped()
}

func (v *ToastView) body(rec notify.Record) string {
	if rec.Message == "" {
		return ""
	}
	if !v.markdown {
		return rec.Message
	}

	if cached, ok := v.bodies[rec.ID]; ok {
		return cached
	}

	out, err := v.renderMarkdown(rec.Message)
	if err != nil {
		v.logger.Warn().Err(err).Int64("id", rec.ID).Msg("markdown render failed, using plain text")
		out = rec.Message
	}
	v.bodies[rec.ID] = out
	return out
}

func (v *ToastView) renderMarkdown(src string) (string, error) {
	if v.renderer == nil {
		// border and padding take two columns each side
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(max(v.width-4, 1)),
		)
		if err != nil {
			return "", err
		}
		v.renderer = r
	}

	out, err := v.renderer.Render(src)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// prune drops cached bodies for records that are gone.
func (v *ToastView) prune(live []notify.Record) {
	if len(v.bodies) == 0 {
		return
	}
	keep := make(map[int64]struct{}, len(live))
	for _, rec := range live {
		keep[rec.ID] = struct{}{}
	}
	for id := range v.bodies {
		if _, ok := keep[id]; !ok {
			delete(v.bodies, id)
		}
	}
}

func kindLabel(k notify.Kind) string {
	switch k {
	case notify.KindSuccess:
		return "Success"
	case notify.KindWarning:
		return "Warning"
	case notify.KindError:
		return "Error"
	default:
		return "Info"
	}
}
