package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pmboard/internal/models"
)

// Color constants for the pmboard TUI
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText  = "#E6EAF2"
	ColorDisabledText = "#6D7383"
	ColorPlaceholder  = "#B1B8C7"
	ColorHelpText     = "240"

	// Accent Colors
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// Palette is the set of colors a view renders with
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Card      lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

// PaletteFor returns the palette for the user's theme preference
func PaletteFor(theme models.Theme) Palette {
	if theme == models.ThemeLight {
		return Palette{
			Text:      lipgloss.Color("#1F2333"),
			Muted:     lipgloss.Color("#5B6275"),
			Border:    lipgloss.Color("#C5CAD8"),
			Accent:    lipgloss.Color(ColorAccentMain),
			Highlight: lipgloss.Color("#5B21B6"),
			Card:      lipgloss.Color("#F1EEFB"),
			Error:     lipgloss.Color("#B91C1C"),
			Success:   lipgloss.Color("#15803D"),
			Warning:   lipgloss.Color("#B45309"),
		}
	}
	return Palette{
		Text:      lipgloss.Color(ColorPrimaryText),
		Muted:     lipgloss.Color(ColorDisabledText),
		Border:    lipgloss.Color(ColorBorder),
		Accent:    lipgloss.Color(ColorAccentMain),
		Highlight: lipgloss.Color(ColorAccentBright),
		Card:      lipgloss.Color(ColorCardBackground),
		Error:     lipgloss.Color(ColorError),
		Success:   lipgloss.Color(ColorSuccess),
		Warning:   lipgloss.Color(ColorWarning),
	}
}

// PriorityColor picks the color a priority badge is drawn in
func (p Palette) PriorityColor(priority models.Priority) lipgloss.Color {
	switch priority {
	case models.PriorityCritical:
		return p.Error
	case models.PriorityHigh:
		return p.Warning
	case models.PriorityLow:
		return p.Muted
	default:
		return p.Text
	}
}
