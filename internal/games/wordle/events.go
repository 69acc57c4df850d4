package wordle

import "time"

// Event is a message consumed by Game.Apply. Player commands come from the
// input mapper; RevealNext is generated by the engine itself.
type Event interface {
	wordleEvent()
}

// Listen appends a letter to the guess being typed.
type Listen struct {
	Letter rune
}

func (Listen) wordleEvent() {}

// Erase drops the last typed letter.
type Erase struct{}

func (Erase) wordleEvent() {}

// SubmitGuess evaluates the typed guess once it has WordLength letters.
type SubmitGuess struct{}

func (SubmitGuess) wordleEvent() {}

// NewRound discards the current round and starts another with a new secret.
type NewRound struct{}

func (NewRound) wordleEvent() {}

// Quit terminates the game from any phase.
type Quit struct{}

func (Quit) wordleEvent() {}

// RevealNext reveals the letter at Index of the guess being animated.
// Index == WordLength settles the guess. Round ties the event to the round
// that scheduled it so late deliveries after a NewRound are ignored.
type RevealNext struct {
	Round uint64
	Index int
}

func (RevealNext) wordleEvent() {}

// Followup is an event the engine asks its scheduler to deliver back to it.
// A zero Delay means post immediately.
type Followup struct {
	Event Event
	Delay time.Duration
}
