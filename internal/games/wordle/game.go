package wordle

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultRevealInterval is the pause between two revealed letters.
const DefaultRevealInterval = 314 * time.Millisecond

// Phase is the run phase of a round.
type Phase int

const (
	PhaseWaiting    Phase = iota // Accepting typed letters
	PhaseEvaluating              // Guess scored, first letter not yet revealed
	PhaseAnimating               // Letters being revealed one by one
	PhaseOver                    // Round finished, see Outcome
	PhaseTerminated              // Player quit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseEvaluating:
		return "Evaluating"
	case PhaseAnimating:
		return "Animating"
	case PhaseOver:
		return "Over"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a finished round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "None"
	}
}

// SecretSource supplies the secret word for each new round.
type SecretSource interface {
	NextSecret() string
}

// SecretFunc adapts a function to SecretSource.
type SecretFunc func() string

// NextSecret calls f.
func (f SecretFunc) NextSecret() string {
	return f()
}

// animation is the Evaluating/Animating state: the scored guess and how many
// of its letters are already visible in the last history slot.
type animation struct {
	pending  Guess
	revealed int
}

// Game is the authoritative state of one player's game.
// It is not safe for concurrent use: all events must be applied from a single
// consumer, and renderers should read Snapshot copies.
type Game struct {
	source         SecretSource
	revealInterval time.Duration

	round   uint64 // Generation, bumped on every new round
	secret  string
	active  []rune
	history []Guess
	phase   Phase
	outcome Outcome
	hints   KeyboardHints
	anim    animation
}

// New creates a game and starts its first round with a secret from source.
// A negative revealInterval is treated as zero.
func New(source SecretSource, revealInterval time.Duration) *Game {
	if revealInterval < 0 {
		revealInterval = 0
	}
	g := &Game{
		source:         source,
		revealInterval: revealInterval,
	}
	g.reset()
	return g
}

// reset starts a new round: clears guesses and hints and draws a new secret.
func (g *Game) reset() {
	secret := strings.ToLower(g.source.NextSecret())
	if utf8.RuneCountInString(secret) != WordLength {
		panic(fmt.Sprintf("wordle: secret source returned %q, need %d letters", secret, WordLength))
	}

	g.round++
	g.secret = secret
	g.active = g.active[:0]
	g.history = nil
	g.phase = PhaseWaiting
	g.outcome = OutcomeNone
	g.hints = NewKeyboardHints()
	g.anim = animation{}
}

// Apply runs one transition and returns the follow-up event the caller must
// schedule, or nil. Events that are not admissible in the current phase are
// ignored; Apply never blocks and never fails.
func (g *Game) Apply(ev Event) *Followup {
	if g.phase == PhaseTerminated {
		return nil
	}

	switch e := ev.(type) {
	case Quit:
		g.phase = PhaseTerminated
	case NewRound:
		g.reset()
	case Listen:
		g.listen(e.Letter)
	case Erase:
		if g.phase == PhaseWaiting && len(g.active) > 0 {
			g.active = g.active[:len(g.active)-1]
		}
	case SubmitGuess:
		return g.submit()
	case RevealNext:
		return g.reveal(e)
	}

	return nil
}

// listen appends a lowercase letter while a guess is being typed.
func (g *Game) listen(letter rune) {
	if g.phase != PhaseWaiting || len(g.active) >= WordLength {
		return
	}
	if !unicode.IsLetter(letter) {
		return
	}
	g.active = append(g.active, unicode.ToLower(letter))
}

// submit scores a complete guess and opens an empty history slot that the
// reveal animation fills letter by letter.
func (g *Game) submit() *Followup {
	if g.phase != PhaseWaiting || len(g.active) != WordLength {
		return nil
	}

	g.phase = PhaseEvaluating
	g.anim = animation{pending: Evaluate(g.secret, string(g.active))}
	g.active = g.active[:0]
	g.history = append(g.history, make(Guess, 0, WordLength))

	return &Followup{Event: RevealNext{Round: g.round, Index: 0}}
}

// reveal pushes the next verdict into the last history slot, or settles the
// round once every letter is visible.
func (g *Game) reveal(e RevealNext) *Followup {
	if g.phase != PhaseEvaluating && g.phase != PhaseAnimating {
		return nil
	}
	// Stale event from an earlier round or a duplicate delivery
	if e.Round != g.round || e.Index != g.anim.revealed {
		return nil
	}

	if e.Index < WordLength {
		last := len(g.history) - 1
		g.history[last] = append(g.history[last], g.anim.pending[e.Index])
		g.anim.revealed++
		g.phase = PhaseAnimating
		return &Followup{
			Event: RevealNext{Round: g.round, Index: e.Index + 1},
			Delay: g.revealInterval,
		}
	}

	g.settle()
	return nil
}

// settle merges the revealed guess into the hints and decides the outcome.
func (g *Game) settle() {
	guess := g.anim.pending
	g.anim = animation{}
	g.hints.Merge(guess)

	won := guess.IsCorrect()
	switch {
	case won:
		g.phase = PhaseOver
		g.outcome = OutcomeWon
	case len(g.history) == MaxGuesses:
		g.phase = PhaseOver
		g.outcome = OutcomeLost
	default:
		g.phase = PhaseWaiting
	}
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns the result of the round; OutcomeNone until it is over.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Round returns the generation number of the current round.
func (g *Game) Round() uint64 {
	return g.round
}

// Secret returns the word being guessed this round.
func (g *Game) Secret() string {
	return g.secret
}

// ActiveGuess returns the letters typed so far.
func (g *Game) ActiveGuess() string {
	return string(g.active)
}

// Attempts returns the number of submitted guesses this round.
func (g *Game) Attempts() int {
	return len(g.history)
}

// RevealInterval returns the delay between revealed letters.
func (g *Game) RevealInterval() time.Duration {
	return g.revealInterval
}
