package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  a-z        - Type a letter
  Backspace  - Erase the last letter
  Enter      - Submit the guess
  Ctrl+N     - New word
  Tab        - Statistics for this session
  Esc/Ctrl+C - Quit

Examples:
  wordle play
  wordle play --daily
  wordle play --seed 42 --reveal-ms 100
  wordle play --config ./my-wordle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	rc, src, err := setup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	seed := rc.SeedOrNow()
	var picker *words.Picker
	if rc.Daily {
		picker = words.NewDailyPicker(src, seed, time.Now(), rc.DailySalt)
	} else {
		picker = words.NewPicker(src, seed)
	}
	game := wordle.New(picker, rc.RevealInterval)

	// Open the session journal
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, src, store, playerName(), rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns the local user name for the journal.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
