package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
)

// KeyMap defines the key bindings for the game screen.
// Letters are not bound here: every single letter key types itself.
type KeyMap struct {
	Erase    key.Binding
	Submit   key.Binding
	NewRound key.Binding
	Stats    key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Erase, k.NewRound, k.Stats, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Erase},
		{k.NewRound, k.Stats, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "erase"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new word"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game event.
// Returns nil for keys that do not drive the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) wordle.Event {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return wordle.Quit{}
	case key.Matches(msg, km.keys.NewRound):
		return wordle.NewRound{}
	case key.Matches(msg, km.keys.Submit):
		return wordle.SubmitGuess{}
	case key.Matches(msg, km.keys.Erase):
		return wordle.Erase{}
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		return wordle.Listen{Letter: msg.Runes[0]}
	}
	return nil
}

// IsStatsToggle reports whether msg switches the statistics view.
func (km *KeyMapper) IsStatsToggle(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Stats)
}
