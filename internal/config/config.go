// Package config provides YAML-based configuration loading for the game,
// layered with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable settings.
type Config struct {
	RevealIntervalMS int         `yaml:"reveal_interval_ms"` // Delay between revealed letters
	TickRate         int         `yaml:"tick_rate"`          // Frame ticks per second
	StrictGuesses    bool        `yaml:"strict_guesses"`     // Reject guesses outside the allowed list
	Words            WordsConfig `yaml:"words"`
	Daily            DailyConfig `yaml:"daily"`
	Theme            ThemeConfig `yaml:"theme"`
}

// WordsConfig points at optional word list files. Empty means embedded.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}

// DailyConfig controls the daily word pick.
type DailyConfig struct {
	Salt string `yaml:"salt"`
}

// ThemeConfig holds lipgloss colors (ANSI 256 codes or hex) for tiles.
type ThemeConfig struct {
	Correct       string `yaml:"correct"`
	WrongPosition string `yaml:"wrong_position"`
	Absent        string `yaml:"absent"`
	Empty         string `yaml:"empty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RevealIntervalMS: 314,
		TickRate:         4,
		Daily:            DailyConfig{Salt: "tui-wordle"},
		Theme: ThemeConfig{
			Correct:       "28",
			WrongPosition: "178",
			Absent:        "240",
			Empty:         "236",
		},
	}
}

// RevealInterval returns the reveal delay as a duration.
func (c Config) RevealInterval() time.Duration {
	return time.Duration(c.RevealIntervalMS) * time.Millisecond
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.RevealIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("reveal_interval_ms must not be negative, got %d", c.RevealIntervalMS))
	}
	if c.Daily.Salt == "" {
		errs = append(errs, errors.New("daily.salt must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
