// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprisland/internal/config"
)

// Fallback colors used when the configured ones are missing.
const (
	defaultText   = "#ffffff"
	defaultMuted  = "#909090"
	defaultAccent = "#ff00ff"
	defaultSubtle = "#00ffff"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Secondary lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from the overlay appearance settings. The
// selected gradient's top color becomes the accent and the unselected top
// color the secondary accent.
func NewTheme(cfg *config.Config) *Theme {
	t := &Theme{
		Text:      lipgloss.Color(defaultText),
		Muted:     lipgloss.Color(defaultMuted),
		Accent:    lipgloss.Color(defaultAccent),
		Secondary: lipgloss.Color(defaultSubtle),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
	}

	if cfg != nil {
		if palette, err := cfg.Palette(); err == nil {
			t.Text = lipgloss.Color(palette.Label.Opaque().Hex())
			t.Accent = lipgloss.Color(palette.Selected.Top.Opaque().Hex())
			t.Secondary = lipgloss.Color(palette.Unselected.Top.Opaque().Hex())
		}
	}
	t.Success = t.Accent

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(t.Secondary).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}
