// Package wordle implements the word-guessing game: the letter comparator,
// keyboard hints, the game model and its update engine.
// It has no terminal or Bubble Tea dependencies so the whole state machine
// can be driven and tested with plain events.
package wordle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordLength is the number of letters in every secret and guess.
const WordLength = 5

// MaxGuesses is the number of attempts in one round.
const MaxGuesses = 6

// Status is the verdict for a single letter of a guess.
type Status int

const (
	StatusAbsent        Status = iota // Letter not usable at this position
	StatusWrongPosition               // Letter in the secret, somewhere else
	StatusCorrect                     // Right letter, right position
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "Absent"
	case StatusWrongPosition:
		return "WrongPosition"
	case StatusCorrect:
		return "Correct"
	default:
		return "Unknown"
	}
}

// precedence orders statuses for keyboard hint upgrades.
func (s Status) precedence() int {
	return int(s)
}

// LetterVerdict pairs a guessed letter with its status.
type LetterVerdict struct {
	Letter rune
	Status Status
}

// String renders the verdict as "letter:Status".
func (v LetterVerdict) String() string {
	return fmt.Sprintf("%c:%s", v.Letter, v.Status)
}

// Guess is an evaluated guess, positionally aligned with the guessed word.
// A finished guess always has WordLength entries.
type Guess []LetterVerdict

// Word returns the guessed letters as a string.
func (g Guess) Word() string {
	var sb strings.Builder
	for _, v := range g {
		sb.WriteRune(v.Letter)
	}
	return sb.String()
}

// IsCorrect reports whether the guess is complete and every letter is Correct.
func (g Guess) IsCorrect() bool {
	if len(g) != WordLength {
		return false
	}
	for _, v := range g {
		if v.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Evaluate compares a guess against the secret and returns one verdict per
// guessed letter. Both words must be exactly WordLength letters; anything
// else is a programming error and panics. Comparison is case-insensitive.
//
// Exact matches are resolved first and consume their letter from the secret.
// The remaining positions are scanned left to right: a letter is marked
// WrongPosition only while the unconsumed supply of that letter in the secret
// covers every not-yet-resolved occurrence from this position onward,
// otherwise it is Absent. Surplus copies of a letter early in the guess
// therefore go Absent and the later copies receive the WrongPosition marks.
func Evaluate(secret, guess string) Guess {
	secret = strings.ToLower(secret)
	guess = strings.ToLower(guess)

	if utf8.RuneCountInString(secret) != WordLength || utf8.RuneCountInString(guess) != WordLength {
		panic(fmt.Sprintf("wordle: evaluate needs %d-letter words, got %q and %q", WordLength, secret, guess))
	}

	s := []rune(secret)
	g := []rune(guess)
	out := make(Guess, WordLength)
	correct := [WordLength]bool{}

	// Remaining supply per letter after exact matches are taken out
	supply := make(map[rune]int, WordLength)
	for _, r := range s {
		supply[r]++
	}
	for i := range g {
		if g[i] == s[i] {
			correct[i] = true
			supply[g[i]]--
			out[i] = LetterVerdict{Letter: g[i], Status: StatusCorrect}
		}
	}

	for i := range g {
		if correct[i] {
			continue
		}
		c := g[i]

		// Unresolved demand for c from here to the end of the guess
		demand := 0
		for j := i; j < WordLength; j++ {
			if g[j] == c && !correct[j] {
				demand++
			}
		}

		if supply[c] > 0 && demand <= supply[c] {
			out[i] = LetterVerdict{Letter: c, Status: StatusWrongPosition}
			supply[c]--
		} else {
			out[i] = LetterVerdict{Letter: c, Status: StatusAbsent}
		}
	}

	return out
}

// ValidWord reports whether s is exactly WordLength letters.
func ValidWord(s string) bool {
	if utf8.RuneCountInString(s) != WordLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
