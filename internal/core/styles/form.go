package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme derived from the active palette. huh renders
// with lipgloss v1, so palette colors are passed as hex strings.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := v1Color(ColorPrimary)
	secondary := v1Color(ColorSecondary)
	muted := v1Color(ColorMuted)
	background := v1Color(ColorBackground)
	success := v1Color(ColorSuccess)
	errColor := v1Color(ColorError)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(success)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(background).Background(primary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipglossv1.HiddenBorder())

	return t
}

func v1Color(c color.Color) lipglossv1.Color {
	if hex := colorHexPtr(c); hex != nil {
		return lipglossv1.Color(*hex)
	}
	return lipglossv1.Color("")
}
