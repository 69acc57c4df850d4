// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle                    - Play in the terminal (same as "wordle play")
//	wordle play               - Play in the terminal
//	wordle serve              - Start SSH server for remote play
//	wordle check <secret> ... - Score guesses against a secret without a UI
//	wordle words              - Show word list statistics
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.wordle/wordle.yaml, ./configs/wordle.yaml)
//	--fps <rate>      - Frame ticks per second
//	--reveal-ms <ms>  - Delay between revealed letters
//	--seed <value>    - RNG seed for reproducible words
//	--daily           - Start with the word of the day
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagRevealMS int
	flagDaily    bool
	flagDebug    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "wordle",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - Guess the five-letter word in your terminal",
	Long: `Wordle is a terminal word game. Guess the hidden five-letter word in
six tries. After each guess the letters are revealed one by one:
green is the right letter in the right place, yellow is in the word
but elsewhere, gray is not in the word.

Available commands:
  play     - Play in the terminal (default)
  serve    - Start SSH server for remote play
  check    - Score guesses against a secret without a UI
  words    - Show word list statistics

Examples:
  wordle
  wordle --daily
  wordle serve --ssh :2222
  wordle check crane slate crane`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagRevealMS, "reveal-ms", 0, "Delay between revealed letters in ms (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDaily, "daily", false, "Start with the word of the day")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(wordsCmd)
}

// setup loads configuration and word lists and applies command-line flags.
func setup(cmd *cobra.Command) (core.RuntimeConfig, *words.Source, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		if flagFPS <= 0 {
			return core.RuntimeConfig{}, nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cfg.TickRate = flagFPS
	}
	if flags.Changed("reveal-ms") {
		if flagRevealMS < 0 {
			return core.RuntimeConfig{}, nil, fmt.Errorf("--reveal-ms must not be negative, got %d", flagRevealMS)
		}
		cfg.RevealIntervalMS = flagRevealMS
	}
	logger.Debug("config loaded",
		"tick_rate", cfg.TickRate,
		"reveal_ms", cfg.RevealIntervalMS,
		"strict", cfg.StrictGuesses,
	)

	src, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		return core.RuntimeConfig{}, nil, err
	}
	answers, allowed := src.Stats()
	logger.Debug("word lists loaded", "answers", answers, "allowed", allowed)

	rc := core.FromConfig(cfg)
	rc.Seed = flagSeed
	rc.Daily = flagDaily
	return rc, src, nil
}
