// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
)

// TickMsg is sent at the frame rate to animate the cursor.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// EventMsg carries a game event scheduled by the engine itself.
type EventMsg struct {
	Event wordle.Event
}

// scheduleCmd delivers a follow-up event back to Update, immediately or
// after its delay. Bubble Tea serializes it with every other message.
func scheduleCmd(f *wordle.Followup) tea.Cmd {
	if f == nil {
		return nil
	}
	ev := f.Event
	if f.Delay <= 0 {
		return func() tea.Msg { return EventMsg{Event: ev} }
	}
	return tea.Tick(f.Delay, func(time.Time) tea.Msg {
		return EventMsg{Event: ev}
	})
}
