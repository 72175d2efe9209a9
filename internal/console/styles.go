package console

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/astrolab/internal/config"
)

// Styles holds every lipgloss style the console renders with
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Value    lipgloss.Style

	// Table styles
	Header  lipgloss.Style
	Border  lipgloss.Style
	OddRow  lipgloss.Style
	EvenRow lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the styles for a color scheme
func NewStyles(colors config.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),

		Header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(colors.Header)),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.TableBorder)),
		OddRow: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(colors.OddRow)),
		EvenRow: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(colors.EvenRow)),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Success)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Info)),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Warning)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Error)),
	}
}
