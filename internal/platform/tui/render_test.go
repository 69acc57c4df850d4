package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

func TestPlainRow(t *testing.T) {
	tests := []struct {
		secret, guess string
		expected      string
	}{
		{"crane", "crane", "C+ R+ A+ N+ E+"},
		{"ennui", "where", "W- H- E- R- E?"},
		{"crane", "pious", "P- I- O- U- S-"},
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			got := PlainRow(wordle.Evaluate(tt.secret, tt.guess))
			if got != tt.expected {
				t.Errorf("PlainRow() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStatusText(t *testing.T) {
	oneGuess := []wordle.Guess{wordle.Evaluate("crane", "slate")}

	tests := []struct {
		name     string
		snap     wordle.Snapshot
		expected string
	}{
		{"waiting", wordle.Snapshot{Phase: wordle.PhaseWaiting, History: oneGuess}, "1/6: Enter your guess"},
		{"animating", wordle.Snapshot{Phase: wordle.PhaseAnimating, History: oneGuess}, "1/6: Checking"},
		{"evaluating", wordle.Snapshot{Phase: wordle.PhaseEvaluating}, "0/6: Checking"},
		{"won", wordle.Snapshot{Phase: wordle.PhaseOver, Outcome: wordle.OutcomeWon, History: oneGuess}, "Correct! Solved in 1/6"},
		{"lost", wordle.Snapshot{Phase: wordle.PhaseOver, Outcome: wordle.OutcomeLost, Secret: "crane"}, "CRANE is the correct word"},
		{"terminated", wordle.Snapshot{Phase: wordle.PhaseTerminated}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusText(tt.snap); got != tt.expected {
				t.Errorf("StatusText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestRenderGridShowsLettersAndCursor(t *testing.T) {
	styles := NewStyles(config.Default().Theme)
	snap := wordle.Snapshot{
		Phase:       wordle.PhaseWaiting,
		History:     []wordle.Guess{wordle.Evaluate("crane", "slate")},
		ActiveGuess: "cr",
	}

	grid := ansi.Strip(styles.RenderGrid(snap, true))
	for _, want := range []string{"S", "L", "A", "T", "E", "C", "R", "_"} {
		if !strings.Contains(grid, want) {
			t.Errorf("grid does not contain %q:\n%s", want, grid)
		}
	}

	// Six rows of three-line tiles
	if lines := strings.Count(grid, "\n") + 1; lines != wordle.MaxGuesses*3 {
		t.Errorf("grid has %d lines, expected %d", lines, wordle.MaxGuesses*3)
	}

	hidden := ansi.Strip(styles.RenderGrid(snap, false))
	if strings.Contains(hidden, "_") {
		t.Error("cursor drawn while blinked off")
	}
}

func TestRenderGridHidesInputWhileRevealing(t *testing.T) {
	styles := NewStyles(config.Default().Theme)
	full := wordle.Evaluate("crane", "slate")
	snap := wordle.Snapshot{
		Phase:    wordle.PhaseAnimating,
		History:  []wordle.Guess{full[:2]},
		Revealed: 2,
	}

	grid := ansi.Strip(styles.RenderGrid(snap, true))
	if !strings.Contains(grid, "S") || !strings.Contains(grid, "L") {
		t.Errorf("revealed letters missing:\n%s", grid)
	}
	if strings.Contains(grid, "T") || strings.Contains(grid, "_") {
		t.Errorf("unrevealed letters or cursor shown:\n%s", grid)
	}
}

func TestRenderKeyboard(t *testing.T) {
	styles := NewStyles(config.Default().Theme)
	hints := wordle.NewKeyboardHints().Merge(wordle.Evaluate("crane", "slate"))

	kb := ansi.Strip(styles.RenderKeyboard(hints))
	lines := strings.Split(kb, "\n")
	if len(lines) != 3 {
		t.Fatalf("keyboard has %d rows, expected 3", len(lines))
	}
	for _, r := range "QWERTYUIOPASDFGHJKLZXCVBNM" {
		if !strings.ContainsRune(kb, r) {
			t.Errorf("keyboard is missing %c", r)
		}
	}
}

func TestRenderStatusNotice(t *testing.T) {
	styles := NewStyles(config.Default().Theme)
	snap := wordle.Snapshot{Phase: wordle.PhaseWaiting}

	got := ansi.Strip(styles.RenderStatus(snap, noticeNotInList))
	if got != noticeNotInList {
		t.Errorf("RenderStatus() = %q, expected the notice", got)
	}
}

func TestRenderStats(t *testing.T) {
	styles := NewStyles(config.Default().Theme)
	if styles.RenderStats(nil, 0) != "" {
		t.Error("RenderStats(nil) should be empty")
	}

	st := &storage.Stats{Played: 4, Wins: 3, CurrentStreak: 2, MaxStreak: 2, Distribution: [6]int{0, 1, 2, 0, 0, 0}}
	out := ansi.Strip(styles.RenderStats(st, 3))
	if !strings.Contains(out, "Played 4  Win 75%  Streak 2  Max 2") {
		t.Errorf("summary line missing:\n%s", out)
	}
	if lines := strings.Count(out, "\n") + 1; lines != 7 {
		t.Errorf("stats have %d lines, expected 7", lines)
	}
}
