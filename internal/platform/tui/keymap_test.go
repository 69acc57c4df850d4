package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected wordle.Event
	}{
		{"letter", runeKey('c'), wordle.Listen{Letter: 'c'}},
		{"uppercase letter", runeKey('C'), wordle.Listen{Letter: 'C'}},
		{"q types a letter", runeKey('q'), wordle.Listen{Letter: 'q'}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, wordle.SubmitGuess{}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, wordle.Erase{}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, wordle.Erase{}},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, wordle.NewRound{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, wordle.Quit{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, wordle.Quit{}},
		{"digit", runeKey('7'), nil},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, nil},
		{"alt+letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, nil},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.MapKey(tt.msg)
			if got != tt.expected {
				t.Errorf("MapKey(%q) = %#v, expected %#v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestStatsToggle(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsStatsToggle(tea.KeyMsg{Type: tea.KeyTab}) {
		t.Error("tab should toggle statistics")
	}
	if km.IsStatsToggle(runeKey('s')) {
		t.Error("letters should not toggle statistics")
	}
	if km.MapKey(tea.KeyMsg{Type: tea.KeyTab}) != nil {
		t.Error("tab should not map to a game event")
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(keys.ShortHelp()))
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", total)
	}
}
