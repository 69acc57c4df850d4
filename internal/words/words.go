// Package words provides the word lists the game draws secrets from.
//
// Lists are embedded in the binary and can be replaced with plain text files,
// one word per line. Only five-letter a–z words are kept; blank lines and
// lines starting with # are skipped. Every answer is also an allowed guess.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

// ErrEmptyList is returned when no usable answer words were found.
var ErrEmptyList = errors.New("words: answers list is empty")

// Source holds the answer list and the set of accepted guesses.
type Source struct {
	answers []string
	allowed map[string]struct{}
}

// Embedded returns the source built from the lists compiled into the binary.
func Embedded() *Source {
	answers, _ := parse(strings.NewReader(embeddedAnswers))
	allowed, _ := parse(strings.NewReader(embeddedAllowed))
	src, err := New(answers, allowed)
	if err != nil {
		// The embedded lists are part of the build
		panic(err)
	}
	return src
}

// Load builds a source from optional list files.
//
//   - both paths set: answers from the first, extra guesses from the second
//   - only allowedPath: that list serves as answers and guesses
//   - only answersPath: those answers plus the embedded guesses
//   - neither: the embedded lists
func Load(answersPath, allowedPath string) (*Source, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		answers, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowed, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(answers, allowed)

	case allowedPath != "":
		allowed, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(allowed, nil)

	case answersPath != "":
		answers, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowed, _ := parse(strings.NewReader(embeddedAllowed))
		return New(answers, allowed)

	default:
		return Embedded(), nil
	}
}

// New builds a source from already normalized lists.
func New(answers, allowed []string) (*Source, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyList
	}

	src := &Source{
		answers: append([]string(nil), answers...),
		allowed: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		src.allowed[w] = struct{}{}
	}
	for _, w := range allowed {
		src.allowed[w] = struct{}{}
	}
	return src, nil
}

// readWordFile loads and normalizes one word list file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	return list, nil
}

// parse keeps the valid five-letter lowercase words of r, in order, without
// duplicates.
func parse(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := strings.ToLower(line)
		if !isWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isWord reports whether s is exactly five lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns an answer chosen with rng.
func (s *Source) Random(rng *rand.Rand) string {
	return s.answers[rng.Intn(len(s.answers))]
}

// IsAllowed reports whether w is an accepted guess.
func (s *Source) IsAllowed(w string) bool {
	_, ok := s.allowed[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w can be a secret.
func (s *Source) IsAnswer(w string) bool {
	w = strings.ToLower(w)
	for _, a := range s.answers {
		if a == w {
			return true
		}
	}
	return false
}

// Stats returns the number of answers and of accepted guesses.
func (s *Source) Stats() (answers int, allowed int) {
	return len(s.answers), len(s.allowed)
}
