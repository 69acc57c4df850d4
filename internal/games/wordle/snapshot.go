package wordle

// Snapshot is a read-only copy of the game state for renderers and tests.
// It shares no memory with the Game it was taken from.
type Snapshot struct {
	Round       uint64
	Secret      string
	ActiveGuess string
	History     []Guess // The last entry is partial while Animating
	Phase       Phase
	Outcome     Outcome
	Revealed    int // Letters of the last guess visible while Evaluating/Animating
	Hints       KeyboardHints
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	history := make([]Guess, len(g.history))
	for i, guess := range g.history {
		history[i] = append(Guess(nil), guess...)
	}

	return Snapshot{
		Round:       g.round,
		Secret:      g.secret,
		ActiveGuess: string(g.active),
		History:     history,
		Phase:       g.phase,
		Outcome:     g.outcome,
		Revealed:    g.anim.revealed,
		Hints:       g.hints.Clone(),
	}
}

// Animating reports whether a guess is still being revealed.
func (s Snapshot) Animating() bool {
	return s.Phase == PhaseEvaluating || s.Phase == PhaseAnimating
}

// Attempts returns the number of submitted guesses, including one being revealed.
func (s Snapshot) Attempts() int {
	return len(s.History)
}
