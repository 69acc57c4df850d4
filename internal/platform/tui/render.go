package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Layout constants
const (
	minHeightForKeyboard = 31 // Below this the on-screen keyboard is hidden
	tileWidth            = 5
	keyWidth             = 3
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	tiles  map[wordle.Status]lipgloss.Style
	empty  lipgloss.Style
	keys   map[wordle.Status]lipgloss.Style
	key    lipgloss.Style
	title  lipgloss.Style
	status lipgloss.Style
	won    lipgloss.Style
	lost   lipgloss.Style
	notice lipgloss.Style
	muted  lipgloss.Style
}

// NewStyles builds styles from theme colors.
func NewStyles(theme config.ThemeConfig) Styles {
	tile := lipgloss.NewStyle().
		Width(tileWidth).
		Padding(1, 0).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("15"))
	key := lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("15"))

	colors := map[wordle.Status]lipgloss.Color{
		wordle.StatusCorrect:       lipgloss.Color(theme.Correct),
		wordle.StatusWrongPosition: lipgloss.Color(theme.WrongPosition),
		wordle.StatusAbsent:        lipgloss.Color(theme.Absent),
	}

	s := Styles{
		tiles:  make(map[wordle.Status]lipgloss.Style, len(colors)),
		keys:   make(map[wordle.Status]lipgloss.Style, len(colors)),
		empty:  tile.Background(lipgloss.Color(theme.Empty)),
		key:    key.Background(lipgloss.Color(theme.Empty)),
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		won:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		lost:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	for st, c := range colors {
		s.tiles[st] = tile.Background(c)
		s.keys[st] = key.Background(c)
	}
	return s
}

// RenderTile renders one grid cell. A zero letter renders blank.
func (s Styles) RenderTile(letter rune, st wordle.Status, known bool) string {
	text := " "
	if letter != 0 {
		text = strings.ToUpper(string(letter))
	}
	if !known {
		return s.empty.Render(text)
	}
	return s.tiles[st].Render(text)
}

// RenderRow renders an evaluated guess as a row of colored tiles.
func (s Styles) RenderRow(row wordle.Guess) string {
	cells := make([]string, 0, wordle.WordLength)
	for _, v := range row {
		cells = append(cells, s.RenderTile(v.Letter, v.Status, true))
	}
	for len(cells) < wordle.WordLength {
		cells = append(cells, s.RenderTile(0, wordle.StatusAbsent, false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells)...)
}

// PlainRow renders a guess without colors: each uppercase letter followed by
// + (correct), ? (wrong position) or - (absent).
func PlainRow(row wordle.Guess) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strings.ToUpper(string(v.Letter)) + statusMarker(v.Status)
	}
	return strings.Join(parts, " ")
}

func statusMarker(st wordle.Status) string {
	switch st {
	case wordle.StatusCorrect:
		return "+"
	case wordle.StatusWrongPosition:
		return "?"
	default:
		return "-"
	}
}

// RenderGrid renders the 6x5 board: finished and revealing guesses, then
// the row being typed with its cursor, then empty rows.
func (s Styles) RenderGrid(snap wordle.Snapshot, cursorOn bool) string {
	rows := make([]string, 0, wordle.MaxGuesses)
	for _, g := range snap.History {
		rows = append(rows, s.RenderRow(g))
	}

	if len(rows) < wordle.MaxGuesses && snap.Phase == wordle.PhaseWaiting {
		rows = append(rows, s.renderActive(snap.ActiveGuess, cursorOn))
	}

	for len(rows) < wordle.MaxGuesses {
		rows = append(rows, s.RenderRow(nil))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (s Styles) renderActive(active string, cursorOn bool) string {
	letters := []rune(active)
	cells := make([]string, 0, wordle.WordLength)
	for i := 0; i < wordle.WordLength; i++ {
		switch {
		case i < len(letters):
			cells = append(cells, s.RenderTile(letters[i], wordle.StatusAbsent, false))
		case i == len(letters) && cursorOn:
			cells = append(cells, s.RenderTile('_', wordle.StatusAbsent, false))
		default:
			cells = append(cells, s.RenderTile(0, wordle.StatusAbsent, false))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells)...)
}

// RenderKeyboard renders a QWERTY keyboard colored by the hints.
func (s Styles) RenderKeyboard(hints wordle.KeyboardHints) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			label := strings.ToUpper(string(r))
			if st, ok := hints.Lookup(r); ok {
				keys = append(keys, s.keys[st].Render(label))
			} else {
				keys = append(keys, s.key.Render(label))
			}
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// StatusText returns the status line for the snapshot.
func StatusText(snap wordle.Snapshot) string {
	switch snap.Phase {
	case wordle.PhaseWaiting:
		return fmt.Sprintf("%d/%d: Enter your guess", snap.Attempts(), wordle.MaxGuesses)
	case wordle.PhaseEvaluating, wordle.PhaseAnimating:
		return fmt.Sprintf("%d/%d: Checking", snap.Attempts(), wordle.MaxGuesses)
	case wordle.PhaseOver:
		if snap.Outcome == wordle.OutcomeWon {
			return fmt.Sprintf("Correct! Solved in %d/%d", snap.Attempts(), wordle.MaxGuesses)
		}
		return fmt.Sprintf("%s is the correct word", strings.ToUpper(snap.Secret))
	default:
		return ""
	}
}

// RenderStatus styles the status line, or shows notice instead when set.
func (s Styles) RenderStatus(snap wordle.Snapshot, notice string) string {
	if notice != "" {
		return s.notice.Render(notice)
	}
	text := StatusText(snap)
	switch {
	case snap.Phase == wordle.PhaseOver && snap.Outcome == wordle.OutcomeWon:
		return s.won.Render(text)
	case snap.Phase == wordle.PhaseOver:
		return s.lost.Render(text)
	default:
		return s.status.Render(text)
	}
}

// RenderStats renders the summary line and guess distribution.
func (s Styles) RenderStats(st *storage.Stats, highlight int) string {
	if st == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Played %d  Win %d%%  Streak %d  Max %d\n",
		st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)

	peak := 1
	for _, n := range st.Distribution {
		peak = max(peak, n)
	}
	const barWidth = 20
	for i, n := range st.Distribution {
		width := 1 + n*(barWidth-1)/peak
		bar := strings.Repeat("█", width)
		if i+1 == highlight {
			bar = s.won.Render(bar)
		} else {
			bar = s.muted.Render(bar)
		}
		fmt.Fprintf(&b, "%d %s %d", i+1, bar, n)
		if i < len(st.Distribution)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// joinWithGap puts a one-column space between cells.
func joinWithGap(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}
