// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Find runs the search.
	Find key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Next moves to the next match, wrapping at the end.
	Next key.Binding

	// Prev moves to the previous match, wrapping at the start.
	Prev key.Binding

	// Replace replaces the current match.
	Replace key.Binding

	// ReplaceAll replaces every match.
	ReplaceAll key.Binding

	// NewFind starts a new search from the match list.
	NewFind key.Binding

	// ToggleRegex switches between literal and regex patterns.
	ToggleRegex key.Binding

	// ToggleCase switches case sensitivity.
	ToggleCase key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Find: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "find"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "N"),
			key.WithHelp("p", "prev"),
		),
		Replace: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replace"),
		),
		ReplaceAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "replace all"),
		),
		NewFind: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "new find"),
		),
		ToggleRegex: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "regex"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "case"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Find, k.Back}
}

// MatchesHelp returns keybindings for the match list.
func (k *KeyMap) MatchesHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Replace, k.ReplaceAll, k.NewFind, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Find, k.NewFind, k.Replace, k.ReplaceAll},
		{k.ToggleRegex, k.ToggleCase},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
