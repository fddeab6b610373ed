package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the console.
type Theme struct {
	TextPrimary lipgloss.Color
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color

	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme is a dark palette in the Tokyo Night family.
var DefaultTheme = Theme{
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	TextMuted:   lipgloss.Color("#414868"),

	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Base        lipgloss.Style
	Dim         lipgloss.Style
	Muted       lipgloss.Style
	Title       lipgloss.Style
	SectionName lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Selected   lipgloss.Style
	KeyBinding lipgloss.Style
	KeyHint    lipgloss.Style
	Footer     lipgloss.Style

	InputActive lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Base:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		Dim:   lipgloss.NewStyle().Foreground(t.TextDim),
		Muted: lipgloss.NewStyle().Foreground(t.TextMuted),
		Title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		SectionName: lipgloss.NewStyle().
			Foreground(t.TextDim).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),

		Selected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		KeyBinding: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.TextDim),
		Footer: lipgloss.NewStyle().
			Foreground(t.TextDim),

		InputActive: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// DefaultStyles returns styles using the default theme.
var DefaultStyles = NewStyles(DefaultTheme)
