package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/games/wordle"
	"github.com/vovakirdan/tui-wordle/internal/platform/headless"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

// Exit code when the guesses did not find the word.
const exitNotSolved = 2

var checkCmd = &cobra.Command{
	Use:   "check <secret> <guess>...",
	Short: "Score guesses against a secret without a UI",
	Long: `Play a round non-interactively: each guess is typed, submitted and
revealed letter by letter, then printed as a row of tiles. When stdout is
not a terminal, rows are printed as letters followed by a marker:

  +  right letter, right place
  ?  in the word, elsewhere
  -  not in the word

Exits with 0 when the word is found, 2 when it is not, 1 on bad input.

Examples:
  wordle check crane slate crane
  wordle check ennui where --reveal-ms 0`,
	Args: cobra.MinimumNArgs(2),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	secret := strings.ToLower(args[0])
	guesses := make([]string, len(args)-1)
	for i, g := range args[1:] {
		guesses[i] = strings.ToLower(g)
	}

	if !wordle.ValidWord(secret) {
		fmt.Fprintf(os.Stderr, "Error: secret %q must be %d letters\n", secret, wordle.WordLength)
		os.Exit(1)
	}

	rc, src, err := setup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !src.IsAnswer(secret) {
		logger.Debug("secret is not in the answer list", "secret", secret)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	styles := tui.NewStyles(rc.Theme)
	color := term.IsTerminal(int(os.Stdout.Fd()))

	session := headless.New(secret, rc.RevealInterval, logger)
	session.OnRow = func(attempt int, row wordle.Guess) {
		if color {
			fmt.Println(styles.RenderRow(row))
			fmt.Println()
			return
		}
		fmt.Printf("%d/%d %s\n", attempt, wordle.MaxGuesses, tui.PlainRow(row))
	}

	res, err := session.Play(ctx, guesses)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(exitNotSolved)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch res.Outcome {
	case wordle.OutcomeWon:
		fmt.Printf("Solved in %d/%d\n", len(res.Rows), wordle.MaxGuesses)
	case wordle.OutcomeLost:
		fmt.Printf("Not solved. The word was %s\n", strings.ToUpper(res.Secret))
		os.Exit(exitNotSolved)
	default:
		fmt.Printf("Not solved after %d/%d guesses\n", len(res.Rows), wordle.MaxGuesses)
		os.Exit(exitNotSolved)
	}
}
