// Package core holds the runtime settings shared by the local TUI, the SSH
// server and the headless checker.
package core

import (
	"time"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
)

// RuntimeConfig contains configuration passed to a session at start.
type RuntimeConfig struct {
	ScreenW        int           // Screen width in characters
	ScreenH        int           // Screen height in characters
	TickRate       int           // Frame ticks per second (default 4)
	Seed           int64         // RNG seed for secret picks
	RevealInterval time.Duration // Delay between revealed letters
	Daily          bool          // First round uses the word of the day
	DailySalt      string        // Salt for the daily pick
	Strict         bool          // Reject guesses outside the allowed list
	Theme          config.ThemeConfig
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	def := config.Default()
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       def.TickRate,
		Seed:           0, // 0 means use current time in platform layer
		RevealInterval: wordle.DefaultRevealInterval,
		DailySalt:      def.Daily.Salt,
		Theme:          def.Theme,
	}
}

// FromConfig builds a RuntimeConfig from loaded file settings.
func FromConfig(cfg config.Config) RuntimeConfig {
	rc := DefaultConfig()
	rc.TickRate = cfg.TickRate
	rc.RevealInterval = cfg.RevealInterval()
	rc.DailySalt = cfg.Daily.Salt
	rc.Strict = cfg.StrictGuesses
	rc.Theme = cfg.Theme
	return rc
}

// SeedOrNow returns Seed, or the current time when Seed is zero.
func (rc RuntimeConfig) SeedOrNow() int64 {
	if rc.Seed != 0 {
		return rc.Seed
	}
	return time.Now().UnixNano()
}
