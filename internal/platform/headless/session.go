// Package headless plays a round without a terminal UI. The game is driven
// through an ordered event scheduler: typed letters and submissions are
// posted as events, and reveal follow-ups are posted back with their delay.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/scheduler"
)

// ErrTooManyGuesses is returned when more guesses are given than a round allows.
var ErrTooManyGuesses = errors.New("headless: too many guesses")

// Result is the state of the round when the session stopped.
type Result struct {
	Secret  string
	Rows    []wordle.Guess
	Outcome wordle.Outcome // OutcomeNone if the guesses ran out before the round ended
}

// Session plays one round for a fixed list of guesses.
type Session struct {
	game   *wordle.Game
	sched  *scheduler.Scheduler[wordle.Event]
	logger *log.Logger

	guesses []string
	next    int
	rows    int

	// OnRow is called once per fully revealed guess, in order.
	OnRow func(attempt int, row wordle.Guess)
}

// New creates a session for the given secret. A nil logger discards logs.
func New(secret string, revealInterval time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   wordle.New(wordle.SecretFunc(func() string { return secret }), revealInterval),
		sched:  scheduler.New[wordle.Event](),
		logger: logger,
	}
}

// Play feeds the guesses one at a time, waiting for each to be fully
// revealed before typing the next, and returns when the round is over, the
// guesses run out or ctx ends.
func (s *Session) Play(ctx context.Context, guesses []string) (Result, error) {
	if len(guesses) > wordle.MaxGuesses {
		return Result{}, fmt.Errorf("%w: got %d, at most %d", ErrTooManyGuesses, len(guesses), wordle.MaxGuesses)
	}
	for _, g := range guesses {
		if !wordle.ValidWord(g) {
			return Result{}, fmt.Errorf("headless: guess %q must be %d letters", g, wordle.WordLength)
		}
	}

	s.guesses = guesses
	defer s.sched.Close()

	if !s.feedNext() {
		return s.result(), nil
	}
	err := s.sched.Run(ctx, s.handle)
	if err != nil {
		s.game.Apply(wordle.Quit{})
		return s.result(), fmt.Errorf("headless: %w", err)
	}
	return s.result(), nil
}

// handle applies one event and schedules what follows from it.
// It returns false when the session is done.
func (s *Session) handle(ev wordle.Event) bool {
	before := s.game.Phase()
	follow := s.game.Apply(ev)
	after := s.game.Phase()

	if before != after {
		s.logger.Debug("transition", "event", fmt.Sprintf("%T", ev), "from", before, "to", after)
	}

	if follow != nil {
		if err := s.sched.PostAfter(follow.Delay, follow.Event); err != nil {
			return false
		}
	}

	// A guess settles when the engine leaves the reveal phases
	if before == wordle.PhaseAnimating && after != wordle.PhaseAnimating {
		s.rows++
		snap := s.game.Snapshot()
		if s.OnRow != nil {
			s.OnRow(s.rows, snap.History[len(snap.History)-1])
		}
	}

	switch after {
	case wordle.PhaseOver, wordle.PhaseTerminated:
		return false
	case wordle.PhaseWaiting:
		if before != wordle.PhaseWaiting {
			return s.feedNext()
		}
	}
	return true
}

// feedNext types the next guess and submits it. It returns false when no
// guesses are left.
func (s *Session) feedNext() bool {
	if s.next >= len(s.guesses) {
		return false
	}
	word := s.guesses[s.next]
	s.next++

	for _, r := range word {
		if err := s.sched.Post(wordle.Listen{Letter: r}); err != nil {
			return false
		}
	}
	return s.sched.Post(wordle.SubmitGuess{}) == nil
}

func (s *Session) result() Result {
	snap := s.game.Snapshot()
	return Result{
		Secret:  snap.Secret,
		Rows:    snap.History,
		Outcome: snap.Outcome,
	}
}
