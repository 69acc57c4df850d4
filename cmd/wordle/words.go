package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	Long: `Display where the word lists come from and how many words they hold.

Lists can be replaced in the config file (words.answers_file,
words.allowed_file) or with the WORDLE_ANSWERS_FILE and
WORDLE_ALLOWED_FILE environment variables.

Examples:
  wordle words
  WORDLE_ANSWERS_FILE=./mine.txt wordle words`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func runWords(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	answers, allowed := src.Stats()

	fmt.Println("Word lists")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %s\n", "List", "Words", "Source")
	fmt.Printf("  %-10s  %-8s  %s\n", "----", "-----", "------")
	fmt.Printf("  %-10s  %-8d  %s\n", "answers", answers, answersSource(cfg.Words))
	fmt.Printf("  %-10s  %-8d  %s\n", "allowed", allowed, allowedSource(cfg.Words))
}

// answersSource describes where the answer list was read from. A lone
// allowed file doubles as the answer list.
func answersSource(wc config.WordsConfig) string {
	switch {
	case wc.AnswersFile != "":
		return wc.AnswersFile
	case wc.AllowedFile != "":
		return wc.AllowedFile
	default:
		return "embedded"
	}
}

// allowedSource describes where accepted guesses come from. Answers always
// count as allowed guesses.
func allowedSource(wc config.WordsConfig) string {
	switch {
	case wc.AllowedFile != "" && wc.AnswersFile != "":
		return wc.AnswersFile + " + " + wc.AllowedFile
	case wc.AllowedFile != "":
		return wc.AllowedFile
	case wc.AnswersFile != "":
		return wc.AnswersFile + " + embedded"
	default:
		return "embedded"
	}
}
