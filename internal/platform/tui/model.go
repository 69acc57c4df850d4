package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// noticeNotInList is shown when strict mode rejects a guess.
const noticeNotInList = "not in word list"

// Model is the Bubble Tea model for one player's game.
// The game is only touched from Update, so Bubble Tea's message loop is its
// single consumer.
type Model struct {
	game       *wordle.Game
	words      *words.Source
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	styles     Styles
	scoreboard Scoreboard

	cursorOn      bool
	notice        string
	recordedRound uint64 // Round already written to the journal, 0 if none
	showStats     bool
	quitting      bool
}

// NewModel creates a model for game. words is used for strict guess checks
// and may be nil; store may be nil to disable the journal.
func NewModel(game *wordle.Game, src *words.Source, store *storage.Store, player string, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		words:      src,
		store:      store,
		player:     player,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		styles:     NewStyles(cfg.Theme),
		scoreboard: NewScoreboard(store, player, cfg.ScreenW, cfg.ScreenH),
		cursorOn:   true,
	}
	m.scoreboard.Reload()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case EventMsg:
		return m.apply(msg.Event)

	case TickMsg:
		m.cursorOn = !m.cursorOn
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsStatsToggle(msg) {
		m.showStats = !m.showStats
		if m.showStats {
			m.scoreboard.Reload()
		}
		return m, nil
	}

	ev := m.keys.MapKey(msg)

	if m.showStats {
		switch ev.(type) {
		case wordle.Quit:
			// Esc closes the statistics first; ctrl+c always quits
			if msg.String() == "esc" {
				m.showStats = false
				return m, nil
			}
		default:
			var cmd tea.Cmd
			m.scoreboard, cmd = m.scoreboard.Update(msg)
			return m, cmd
		}
	}

	if ev == nil {
		return m, nil
	}

	switch ev.(type) {
	case wordle.Listen, wordle.Erase, wordle.NewRound:
		m.notice = ""
	case wordle.SubmitGuess:
		if m.rejectGuess() {
			m.notice = noticeNotInList
			return m, nil
		}
	}

	return m.apply(ev)
}

// rejectGuess reports whether strict mode refuses the typed guess.
func (m Model) rejectGuess() bool {
	if !m.config.Strict || m.words == nil {
		return false
	}
	if m.game.Phase() != wordle.PhaseWaiting {
		return false
	}
	active := m.game.ActiveGuess()
	return len([]rune(active)) == wordle.WordLength && !m.words.IsAllowed(active)
}

// apply feeds one event to the game and turns its follow-up into a command.
func (m Model) apply(ev wordle.Event) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	follow := m.game.Apply(ev)

	switch m.game.Phase() {
	case wordle.PhaseTerminated:
		m.quitting = true
		return m, tea.Quit
	case wordle.PhaseOver:
		m.recordRound()
	}

	return m, scheduleCmd(follow)
}

// recordRound writes the finished round to the journal once.
func (m *Model) recordRound() {
	round := m.game.Round()
	if m.recordedRound == round {
		return
	}
	m.recordedRound = round

	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	guesses := make([]string, len(snap.History))
	for i, g := range snap.History {
		guesses[i] = g.Word()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.RecordRound(storage.Round{
		Player:  m.player,
		Secret:  snap.Secret,
		Guesses: guesses,
		Won:     snap.Outcome == wordle.OutcomeWon,
	})
	m.scoreboard.Reload()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.scoreboard.Resize(msg.Width, msg.Height)
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showStats {
		body = m.scoreboard.View(m.styles)
	} else {
		body = m.renderGame(m.game.Snapshot())
	}

	helpView := m.styles.muted.Render(m.help.View(m.keys.Keys()))
	page := lipgloss.JoinVertical(lipgloss.Center, body, "", helpView)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return page
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, page)
}

// renderGame draws the title, board, status line, keyboard and, once the
// round is over, the player's statistics.
func (m Model) renderGame(snap wordle.Snapshot) string {
	parts := []string{
		m.styles.title.Render("W O R D L E"),
		"",
		m.styles.RenderGrid(snap, m.cursorOn),
		"",
		m.styles.RenderStatus(snap, m.notice),
	}

	if m.config.ScreenH >= minHeightForKeyboard {
		parts = append(parts, "", m.styles.RenderKeyboard(snap.Hints))
	}

	if snap.Phase == wordle.PhaseOver {
		if stats := m.scoreboard.Stats(); stats != nil && stats.Played > 0 {
			highlight := 0
			if snap.Outcome == wordle.OutcomeWon {
				highlight = snap.Attempts()
			}
			parts = append(parts, "", m.styles.RenderStats(stats, highlight))
		}
		parts = append(parts, "", m.styles.muted.Render("ctrl+n for a new word"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Game returns the underlying game.
func (m Model) Game() *wordle.Game {
	return m.game
}

// Notice returns the transient status message, if any.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program with the given model.
func Run(game *wordle.Game, src *words.Source, store *storage.Store, player string, cfg core.RuntimeConfig) error {
	model := NewModel(game, src, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
