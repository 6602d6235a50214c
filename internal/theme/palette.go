package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours the window is drawn with.
type Palette struct {
	Frame    lipgloss.Color
	TitleBar lipgloss.Color
	Title    lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Prompt   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Accent   lipgloss.Color
	// Traffic-light buttons in the title bar.
	CloseDot    lipgloss.Color
	MinimizeDot lipgloss.Color
	MaximizeDot lipgloss.Color
}

var darkPalette = Palette{
	Frame:       lipgloss.Color("#3b4261"),
	TitleBar:    lipgloss.Color("#1f2335"),
	Title:       lipgloss.Color("#c0caf5"),
	Text:        lipgloss.Color("#a9b1d6"),
	Muted:       lipgloss.Color("#565f89"),
	Prompt:      lipgloss.Color("#9ece6a"),
	Success:     lipgloss.Color("#9ece6a"),
	Error:       lipgloss.Color("#f7768e"),
	Warning:     lipgloss.Color("#e0af68"),
	Accent:      lipgloss.Color("#7aa2f7"),
	CloseDot:    lipgloss.Color("#ff5f57"),
	MinimizeDot: lipgloss.Color("#febc2e"),
	MaximizeDot: lipgloss.Color("#28c840"),
}

var lightPalette = Palette{
	Frame:       lipgloss.Color("#c4c8da"),
	TitleBar:    lipgloss.Color("#e9e9ed"),
	Title:       lipgloss.Color("#343b58"),
	Text:        lipgloss.Color("#40434f"),
	Muted:       lipgloss.Color("#8990b3"),
	Prompt:      lipgloss.Color("#33635c"),
	Success:     lipgloss.Color("#33635c"),
	Error:       lipgloss.Color("#8c4351"),
	Warning:     lipgloss.Color("#8f5e15"),
	Accent:      lipgloss.Color("#34548a"),
	CloseDot:    lipgloss.Color("#ff5f57"),
	MinimizeDot: lipgloss.Color("#febc2e"),
	MaximizeDot: lipgloss.Color("#28c840"),
}

// PaletteFor returns the palette for an effective theme. System is treated as Dark.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return lightPalette
	}
	return darkPalette
}
