package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// OverlayKeyMap defines keybindings for the terminal overlay.
type OverlayKeyMap struct {
	Split key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k OverlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Split, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k OverlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Split},
		{k.Help, k.Quit},
	}
}

// NewOverlayKeyMap builds the overlay keybindings from configured key names.
func NewOverlayKeyMap(split, quit []string) OverlayKeyMap {
	return OverlayKeyMap{
		Split: key.NewBinding(
			key.WithKeys(split...),
			key.WithHelp(helpKeys(split), "split selected"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit...),
			key.WithHelp(helpKeys(quit), "quit"),
		),
	}
}

func helpKeys(keys []string) string {
	return strings.Join(keys, "/")
}

// NewHelpModel creates a help model styled with the theme.
func NewHelpModel(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Muted)
	return h
}
