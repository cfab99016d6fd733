package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var flagDefaultConfig bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list information",
	Long: `Show where the configuration and word list come from, how many words
are accepted as guesses and which of them can be secret words.

With --default-config, print the built-in configuration file instead.
It is a starting point for ~/.wordle/config.yaml.

Examples:
  wordle words
  wordle words --default-config > ~/.wordle/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&flagDefaultConfig, "default-config", false, "Print the built-in config YAML and exit")
}

func runWords(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger("wordle")

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	bank, err := openBank(cfg.Words, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	list := cfg.Words.Path
	if list == "" {
		list = "(built-in)"
	}
	all := bank.Words()

	fmt.Printf("Config:   %s\n", src)
	fmt.Printf("List:     %s\n", list)
	fmt.Printf("Words:    %d\n", bank.Len())
	fmt.Printf("Answers:  %d (index %d..%d, %s..%s)\n",
		bank.AnswerCount(), bank.AnswerIndex(), bank.Len()-1,
		all[bank.AnswerIndex()], all[bank.Len()-1])
}
