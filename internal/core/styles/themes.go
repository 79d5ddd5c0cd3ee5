package styles

import (
	"image/color"
	"slices"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Light bool

	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Info       color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Info:       lipgloss.Color("#7dcfff"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"tokyo-day": {
		Light:      true,
		Primary:    lipgloss.Color("#2e7de9"),
		Secondary:  lipgloss.Color("#007197"),
		Foreground: lipgloss.Color("#3760bf"),
		Muted:      lipgloss.Color("#848cb5"),
		Background: lipgloss.Color("#e1e2e7"),
		Surface:    lipgloss.Color("#c4c8da"),
		Success:    lipgloss.Color("#587539"),
		Info:       lipgloss.Color("#007197"),
		Warning:    lipgloss.Color("#8c6c3e"),
		Error:      lipgloss.Color("#f52a65"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Info:       lipgloss.Color("#83a598"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// NextTheme returns the theme after current in ThemeNames order, wrapping
// around. Unknown names start over at the first theme.
func NextTheme(current string) string {
	names := ThemeNames()
	i := slices.Index(names, current)
	return names[(i+1)%len(names)]
}
