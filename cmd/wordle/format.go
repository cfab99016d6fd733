package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

var formatCmd = &cobra.Command{
	Use:   "format <input> <output>",
	Short: "Convert the NYT word list into the game's format",
	Long: `Read a word list in the quoted form used by the NYT source
("cigar", "rebut", ...) and write it as a plain comma-separated list
that the game can load with words.path.

Examples:
  wordle format nyt.txt words.csv`,
	Args: cobra.ExactArgs(2),
	Run:  runFormat,
}

func runFormat(_ *cobra.Command, args []string) {
	in, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}

	n, err := words.Reformat(in, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting word list: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d words to %s\n", n, args[1])
	if n == words.NYTTotal {
		fmt.Printf("\nAdd to your config:\n\nwords:\n  path: %s\n  total: %d\n  answer_index: %d\n",
			args[1], words.NYTTotal, words.NYTAnswerIndex)
	}
}
