package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// DateKey returns the UTC calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex maps a day to an index in [0, n) using HMAC-SHA256(salt, day).
// The same salt and day always give the same index.
func DailyIndex(day time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(day)))
	sum := mac.Sum(nil)

	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Daily returns the answer for the given day.
func (s *Source) Daily(day time.Time, salt string) string {
	return s.answers[DailyIndex(day, salt, len(s.answers))]
}

// Picker hands out secrets for consecutive rounds. It satisfies
// wordle.SecretSource.
type Picker struct {
	src   *Source
	rng   *rand.Rand
	first string // Served once before falling back to random picks
}

// NewPicker creates a picker that draws random answers seeded with seed.
func NewPicker(src *Source, seed int64) *Picker {
	return &Picker{
		src: src,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewDailyPicker creates a picker whose first secret is the answer for day;
// later rounds are random.
func NewDailyPicker(src *Source, seed int64, day time.Time, salt string) *Picker {
	p := NewPicker(src, seed)
	p.first = src.Daily(day, salt)
	return p
}

// NextSecret returns the secret for the next round.
func (p *Picker) NextSecret() string {
	if p.first != "" {
		w := p.first
		p.first = ""
		return w
	}
	return p.src.Random(p.rng)
}
