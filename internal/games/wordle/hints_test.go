package wordle

import (
	"maps"
	"testing"
)

func TestMergeInsertsNewLetters(t *testing.T) {
	hints := NewKeyboardHints()
	hints.Merge(Evaluate("pious", "piano"))

	expected := KeyboardHints{
		'p': StatusCorrect,
		'i': StatusCorrect,
		'a': StatusAbsent,
		'n': StatusAbsent,
		'o': StatusWrongPosition,
	}
	if !maps.Equal(hints, expected) {
		t.Errorf("Merge() = %v, expected %v", hints, expected)
	}
}

func TestMergeUpgradeOnly(t *testing.T) {
	tests := []struct {
		name     string
		stored   Status
		incoming Status
		expected Status
	}{
		{"absent to wrong position", StatusAbsent, StatusWrongPosition, StatusWrongPosition},
		{"absent to correct", StatusAbsent, StatusCorrect, StatusCorrect},
		{"wrong position to correct", StatusWrongPosition, StatusCorrect, StatusCorrect},
		{"correct stays on wrong position", StatusCorrect, StatusWrongPosition, StatusCorrect},
		{"correct stays on absent", StatusCorrect, StatusAbsent, StatusCorrect},
		{"wrong position stays on absent", StatusWrongPosition, StatusAbsent, StatusWrongPosition},
		{"same status is idempotent", StatusWrongPosition, StatusWrongPosition, StatusWrongPosition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hints := KeyboardHints{'e': tc.stored}
			hints.Merge([]LetterVerdict{{Letter: 'e', Status: tc.incoming}})
			if got := hints['e']; got != tc.expected {
				t.Errorf("hint = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMergeDuplicateLetterDoesNotRegress(t *testing.T) {
	// "evoke" against "drove": first e is Absent, last e is Correct
	hints := NewKeyboardHints()
	hints.Merge(Evaluate("drove", "evoke"))

	if hints['e'] != StatusCorrect {
		t.Errorf("hint for e = %v, expected Correct", hints['e'])
	}

	// A later guess with e in the wrong place must not downgrade it
	hints.Merge(Evaluate("drove", "eerie"))
	if hints['e'] != StatusCorrect {
		t.Errorf("hint for e after second guess = %v, expected Correct", hints['e'])
	}
}

func TestMergeIdempotent(t *testing.T) {
	verdicts := Evaluate("ennui", "where")

	once := NewKeyboardHints().Merge(verdicts)
	twice := NewKeyboardHints().Merge(verdicts).Merge(verdicts)

	if !maps.Equal(once, twice) {
		t.Errorf("merging twice = %v, merging once = %v", twice, once)
	}
}

func TestMergeReturnsSameMap(t *testing.T) {
	hints := NewKeyboardHints()
	returned := hints.Merge(Evaluate("crane", "crate"))
	returned['z'] = StatusAbsent

	if _, ok := hints.Lookup('z'); !ok {
		t.Error("Merge() should return the receiver, not a copy")
	}
}

func TestHintsClone(t *testing.T) {
	hints := KeyboardHints{'a': StatusAbsent}
	clone := hints.Clone()
	clone['a'] = StatusCorrect

	if hints['a'] != StatusAbsent {
		t.Error("modifying the clone changed the original")
	}
}
