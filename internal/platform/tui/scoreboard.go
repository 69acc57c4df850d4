package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Scoreboard layout constants
const (
	maxRounds     = 50 // Max rounds to load
	tableMinWidth = 40 // Minimum table width
)

// Scoreboard shows the player's statistics and recent rounds.
type Scoreboard struct {
	store  *storage.Store
	player string
	stats  *storage.Stats
	rounds []storage.Round
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard for player. A nil store shows nothing.
func NewScoreboard(store *storage.Store, player string, width, height int) Scoreboard {
	sb := Scoreboard{
		store:  store,
		player: player,
		width:  width,
		height: height,
	}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Word", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Guesses", Width: 36},
	}

	// Shrink the guesses column on narrow terminals
	tableWidth := max(sb.width-6, tableMinWidth)
	if rest := tableWidth - 19; rest < columns[2].Width {
		columns[2].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(sb.height-16, 3)), // Leave room for stats, header and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload refreshes statistics and rounds from the store.
func (sb *Scoreboard) Reload() {
	if sb.store == nil {
		sb.stats = nil
		sb.rounds = nil
		sb.updateTableRows()
		return
	}

	if stats, err := sb.store.Stats(sb.player); err == nil {
		sb.stats = stats
	} else {
		sb.stats = nil
	}
	if rounds, err := sb.store.RecentRounds(sb.player, maxRounds); err == nil {
		sb.rounds = rounds
	} else {
		sb.rounds = nil
	}
	sb.updateTableRows()
}

// Stats returns the last loaded statistics, or nil.
func (sb *Scoreboard) Stats() *storage.Stats {
	return sb.stats
}

// updateTableRows updates the table with current rounds.
func (sb *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.rounds))
	for i, r := range sb.rounds {
		result := "lost"
		if r.Won {
			result = fmt.Sprintf("%d/%d", len(r.Guesses), storage.MaxAttempts)
		}
		rows[i] = table.Row{
			strings.ToUpper(r.Secret),
			result,
			strings.ToUpper(strings.Join(r.Guesses, " ")),
		}
	}
	sb.table.SetRows(rows)

	// Reset cursor to top
	sb.table.GotoTop()
}

// Resize rebuilds the table for a new terminal size.
func (sb *Scoreboard) Resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// Update passes scrolling keys to the table.
func (sb Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return sb, cmd
}

// View renders the scoreboard.
func (sb Scoreboard) View(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("STATISTICS"))
	b.WriteString("\n\n")

	if sb.stats == nil || sb.stats.Played == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(emptyStyle.Render("No rounds finished yet.\nSolve a word to start your streak!"))
		return b.String()
	}

	b.WriteString(styles.RenderStats(sb.stats, 0))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(sb.table.View()))

	return b.String()
}
