// Package styles provides colour themes and styling shared by the TUI and
// the styled console output of the CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour, used for headings.
	Primary lipgloss.Color

	// Secondary marks section titles.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for descriptions, urls and help text.
	Muted lipgloss.Color

	// Entity highlights entity names.
	Entity lipgloss.Color

	// Link highlights relationship types.
	Link lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#B48EAD"), // Violet
		Secondary:  lipgloss.Color("#88C0D0"), // Frost
		Foreground: lipgloss.Color("#ECEFF4"), // Snow
		Muted:      lipgloss.Color("#7B88A1"), // Slate
		Entity:     lipgloss.Color("#EBCB8B"), // Gold
		Link:       lipgloss.Color("#A3BE8C"), // Sage
		Success:    lipgloss.Color("#8FBCBB"), // Teal
		Error:      lipgloss.Color("#BF616A"), // Red
		Border:     lipgloss.Color("#4C566A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for page headers.
	Title lipgloss.Style

	// Section style for section headers within a page.
	Section lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Entity style for entity names.
	Entity lipgloss.Style

	// Link style for relationship types.
	Link lipgloss.Style

	// Selected style for highlighted list items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Entity: lipgloss.NewStyle().
			Foreground(theme.Entity),

		Link: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Link),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged, for output that
// is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:     DefaultTheme(),
		Title:     plain,
		Section:   plain,
		Normal:    plain,
		Muted:     plain,
		Entity:    plain,
		Link:      plain,
		Selected:  plain,
		Error:     plain,
		Success:   plain,
		StatusBar: plain,
		Help:      plain,
		Border:    plain,
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
