package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Check words against the word list",
	Long: `Report for each word whether it is an accepted guess and whether it
can be drawn as a secret word.

Examples:
  wordle check cigar
  wordle check aahed rebut xxxxx`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	logger := newLogger("wordle")

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	bank, err := openBank(cfg.Words, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	invalid := 0
	for _, arg := range args {
		word := strings.ToLower(strings.TrimSpace(arg))
		switch {
		case bank.IsAnswer(word):
			fmt.Printf("%-10s valid, answer\n", word)
		case bank.IsValidWord(word):
			fmt.Printf("%-10s valid\n", word)
		default:
			fmt.Printf("%-10s not in word list\n", word)
			invalid++
		}
	}

	if invalid > 0 {
		os.Exit(1)
	}
}
