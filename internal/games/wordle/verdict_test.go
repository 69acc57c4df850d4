package wordle

import (
	"testing"
)

func statuses(g Guess) []Status {
	out := make([]Status, len(g))
	for i, v := range g {
		out[i] = v.Status
	}
	return out
}

func TestEvaluateWorkedExamples(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		guess    string
		expected []Status
	}{
		{
			name:   "ennui where keeps the last e",
			secret: "ennui",
			guess:  "where",
			expected: []Status{
				StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusWrongPosition,
			},
		},
		{
			name:   "drove evoke correct e consumes supply",
			secret: "drove",
			guess:  "evoke",
			expected: []Status{
				StatusAbsent, StatusWrongPosition, StatusCorrect, StatusAbsent, StatusCorrect,
			},
		},
		{
			name:   "two copies in secret both marked",
			secret: "eerie",
			guess:  "rebel",
			expected: []Status{
				StatusWrongPosition, StatusCorrect, StatusAbsent, StatusWrongPosition, StatusAbsent,
			},
		},
		{
			name:   "triple guess letter with single supply",
			secret: "abbey",
			guess:  "eerie",
			expected: []Status{
				StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusWrongPosition,
			},
		},
		{
			name:   "mixed case is normalized",
			secret: "CRANE",
			guess:  "crAnE",
			expected: []Status{
				StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.secret, tc.guess)
			if len(got) != WordLength {
				t.Fatalf("Evaluate() returned %d verdicts, expected %d", len(got), WordLength)
			}
			for i, s := range statuses(got) {
				if s != tc.expected[i] {
					t.Errorf("position %d (%c) = %v, expected %v", i, got[i].Letter, s, tc.expected[i])
				}
			}
		})
	}
}

func TestEvaluateLettersFollowGuess(t *testing.T) {
	got := Evaluate("ennui", "where")
	if got.Word() != "where" {
		t.Errorf("Word() = %q, expected %q", got.Word(), "where")
	}
}

func TestEvaluateSecretAgainstItself(t *testing.T) {
	for _, w := range []string{"crane", "eerie", "abbey", "mamma", "puppy"} {
		got := Evaluate(w, w)
		if !got.IsCorrect() {
			t.Errorf("Evaluate(%q, %q) = %v, expected all Correct", w, w, got)
		}
	}
}

func TestEvaluateDisjointLetters(t *testing.T) {
	got := Evaluate("crane", "posit")
	for i, v := range got {
		if v.Status != StatusAbsent {
			t.Errorf("position %d = %v, expected Absent", i, v.Status)
		}
	}
}

func TestEvaluateNeverMarksMoreThanSupply(t *testing.T) {
	pairs := [][2]string{
		{"ennui", "eeeee"},
		{"abbey", "bbbbb"},
		{"spell", "lllll"},
		{"sassy", "sssss"},
		{"where", "eerie"},
	}

	for _, p := range pairs {
		secret, guess := p[0], p[1]
		got := Evaluate(secret, guess)

		supply := map[rune]int{}
		for _, r := range secret {
			supply[r]++
		}
		marked := map[rune]int{}
		for _, v := range got {
			if v.Status != StatusAbsent {
				marked[v.Letter]++
			}
		}
		for r, n := range marked {
			if n > supply[r] {
				t.Errorf("Evaluate(%q, %q) marked %d %c, secret has %d", secret, guess, n, r, supply[r])
			}
		}
	}
}

func TestEvaluatePanicsOnBadLength(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
	}{
		{"short guess", "crane", "cran"},
		{"long secret", "cranes", "crane"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Evaluate(%q, %q) should panic", tc.secret, tc.guess)
				}
			}()
			Evaluate(tc.secret, tc.guess)
		})
	}
}

func TestGuessIsCorrect(t *testing.T) {
	all := Guess{
		{'p', StatusCorrect}, {'i', StatusCorrect}, {'o', StatusCorrect},
		{'u', StatusCorrect}, {'s', StatusCorrect},
	}
	if !all.IsCorrect() {
		t.Error("five Correct verdicts should be a correct guess")
	}

	notAll := Guess{
		{'x', StatusAbsent}, {'i', StatusCorrect}, {'o', StatusCorrect},
		{'u', StatusCorrect}, {'s', StatusCorrect},
	}
	if notAll.IsCorrect() {
		t.Error("guess with an Absent letter should not be correct")
	}

	if all[:3].IsCorrect() {
		t.Error("partial guess should not be correct")
	}
}

func TestValidWord(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"crane", true},
		{"CRANE", true},
		{"crab", false},
		{"cranes", false},
		{"cr4ne", false},
		{"cr ne", false},
		{"", false},
		{"ÉCLAT", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := ValidWord(tt.word); got != tt.expected {
				t.Errorf("ValidWord(%q) = %v, expected %v", tt.word, got, tt.expected)
			}
		})
	}
}
