package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	BarEmpty  lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:      lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#a6adc8"),
		Accent:    lipgloss.Color("#cba6f7"),
		AccentAlt: lipgloss.Color("#f38ba8"),
		Border:    lipgloss.Color("#585b70"),
		Success:   lipgloss.Color("#94e2d5"),
		Warning:   lipgloss.Color("#f9e2af"),
		BarEmpty:  lipgloss.Color("#313244"),
	},
	"dracula": {
		Text:      lipgloss.Color("#f8f8f2"),
		Muted:     lipgloss.Color("#6272a4"),
		Accent:    lipgloss.Color("#ff79c6"),
		AccentAlt: lipgloss.Color("#bd93f9"),
		Border:    lipgloss.Color("#44475a"),
		Success:   lipgloss.Color("#50fa7b"),
		Warning:   lipgloss.Color("#f1fa8c"),
		BarEmpty:  lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Text:      lipgloss.Color("#ebdbb2"),
		Muted:     lipgloss.Color("#a89984"),
		Accent:    lipgloss.Color("#fabd2f"),
		AccentAlt: lipgloss.Color("#d3869b"),
		Border:    lipgloss.Color("#665c54"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fe8019"),
		BarEmpty:  lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Text:      lipgloss.Color("#fdf6e3"),
		Muted:     lipgloss.Color("#93a1a1"),
		Accent:    lipgloss.Color("#b58900"),
		AccentAlt: lipgloss.Color("#268bd2"),
		Border:    lipgloss.Color("#586e75"),
		Success:   lipgloss.Color("#859900"),
		Warning:   lipgloss.Color("#cb4b16"),
		BarEmpty:  lipgloss.Color("#073642"),
	},
}

const defaultTheme = "catppuccin"

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

// ThemeNames lists the available palettes.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := ThemeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

// styles are derived from a palette whenever the theme changes.
type styles struct {
	title    lipgloss.Style
	muted    lipgloss.Style
	panel    lipgloss.Style
	key      lipgloss.Style
	win      lipgloss.Style
	loss     lipgloss.Style
	draw     lipgloss.Style
	barWin   lipgloss.Style
	barLoss  lipgloss.Style
	barDraw  lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		panel:    lipgloss.NewStyle().Foreground(p.Text).Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		key:      lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		win:      lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		loss:     lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		draw:     lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		barWin:   lipgloss.NewStyle().Foreground(p.Success),
		barLoss:  lipgloss.NewStyle().Foreground(p.AccentAlt),
		barDraw:  lipgloss.NewStyle().Foreground(p.Warning),
		barEmpty: lipgloss.NewStyle().Foreground(p.BarEmpty),
	}
}
