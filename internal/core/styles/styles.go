// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hay-kot/toaster/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorInfo       color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessTextStyle   lipgloss.Style
	InfoTextStyle      lipgloss.Style
	WarningTextStyle   lipgloss.Style
	ErrorTextStyle     lipgloss.Style

	// Toast styles. The border color follows the notification kind.
	ToastSuccessStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastTitleStyle   lipgloss.Style
	ToastCloseStyle   lipgloss.Style

	// TUI chrome.
	HeaderStyle   lipgloss.Style
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	StatusStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorInfo = p.Info
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessTextStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoTextStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	WarningTextStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorTextStyle = lipgloss.NewStyle().Foreground(ColorError)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(ColorForeground).
		Padding(0, 1)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess)
	ToastInfoStyle = toastBase.BorderForeground(ColorInfo)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
	ToastTitleStyle = lipgloss.NewStyle().Bold(true)
	ToastCloseStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
}

// ToastStyle returns the container style for a notification kind.
func ToastStyle(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindSuccess:
		return ToastSuccessStyle
	case notify.KindWarning:
		return ToastWarningStyle
	case notify.KindError:
		return ToastErrorStyle
	default:
		return ToastInfoStyle
	}
}

// KindIcon returns the glyph shown in front of a notification of kind k.
func KindIcon(k notify.Kind) string {
	switch k {
	case notify.KindSuccess:
		return IconNotifySuccess
	case notify.KindWarning:
		return IconNotifyWarning
	case notify.KindError:
		return IconNotifyError
	default:
		return IconNotifyInfo
	}
}

// KindColor returns the accent color for a notification of kind k.
func KindColor(k notify.Kind) color.Color {
	switch k {
	case notify.KindSuccess:
		return ColorSuccess
	case notify.KindWarning:
		return ColorWarning
	case notify.KindError:
		return ColorError
	default:
		return ColorInfo
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// Toast bodies are small, so document margins are dropped.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	var noMargin uint
	cfg.Document.Margin = &noMargin
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""
	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
