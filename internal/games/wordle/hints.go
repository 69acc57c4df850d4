package wordle

// KeyboardHints holds the best-known status for every letter evaluated so far
// in the current round. Letters only appear once a guess containing them has
// been fully revealed.
type KeyboardHints map[rune]Status

// NewKeyboardHints creates an empty hint set.
func NewKeyboardHints() KeyboardHints {
	return make(KeyboardHints)
}

// Merge folds verdicts into the hints in place and returns the same map.
// An entry is only replaced by a status of strictly higher precedence
// (Correct > WrongPosition > Absent), so a Correct letter never regresses
// when a later guess repeats it elsewhere.
func (h KeyboardHints) Merge(verdicts []LetterVerdict) KeyboardHints {
	for _, v := range verdicts {
		current, ok := h[v.Letter]
		if !ok || v.Status.precedence() > current.precedence() {
			h[v.Letter] = v.Status
		}
	}
	return h
}

// Lookup returns the hint for a letter and whether one is known.
func (h KeyboardHints) Lookup(letter rune) (Status, bool) {
	s, ok := h[letter]
	return s, ok
}

// Clone returns an independent copy of the hints.
func (h KeyboardHints) Clone() KeyboardHints {
	clone := make(KeyboardHints, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}
