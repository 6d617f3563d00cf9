package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/mindful/internal/catalog"
)

// Styles are the lipgloss styles derived from a theme palette.
type Styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Text        lipgloss.Style
	Hint        lipgloss.Style
	Accent      lipgloss.Style
	Selected    lipgloss.Style
	Bubble      lipgloss.Style
	Canvas      lipgloss.Style
	Modal       lipgloss.Style
	Swatch      func(hex string) lipgloss.Style
	AccentColor lipgloss.Color
}

// NewStyles builds the styles for theme.
func NewStyles(theme catalog.Theme) Styles {
	bg := lipgloss.Color(theme.Background)
	fg := lipgloss.Color(theme.Foreground)
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2).
			Background(bg).
			Foreground(fg),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(muted),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(bg).
			Background(accent),
		Text: lipgloss.NewStyle().
			Foreground(fg),
		Hint: lipgloss.NewStyle().
			Foreground(muted),
		Accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Underline(true),
		Bubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Align(lipgloss.Center, lipgloss.Center),
		Canvas: lipgloss.NewStyle().
			Foreground(muted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Swatch: func(hex string) lipgloss.Style {
			return lipgloss.NewStyle().Background(lipgloss.Color(hex))
		},
		AccentColor: accent,
	}
}
