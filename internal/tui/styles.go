package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Primary string
	Accent  string
	Text    string
	Subtle  string
	Error   string
}

// TealTheme matches the tray's classic teal look.
func TealTheme() Theme {
	return Theme{
		Primary: "#009688",
		Accent:  "#b2dfdb",
		Text:    "#e6e1e9",
		Subtle:  "#888888",
		Error:   "#ffb4ab",
	}
}

type Styles struct {
	Title        lipgloss.Style
	SectionTitle lipgloss.Style
	Focused      lipgloss.Style
	Value        lipgloss.Style
	Subtle       lipgloss.Style
	Preset       lipgloss.Style
	PresetActive lipgloss.Style
	PresetCursor lipgloss.Style
	Error        lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginBottom(1),

		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Preset: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Padding(0, 1),

		PresetActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 1),

		PresetCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
	}
}
