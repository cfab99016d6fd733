// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle                      - Play a game (same as wordle play)
//	wordle play                 - Play a game
//	wordle serve                - Start SSH server for remote play
//	wordle check <word>...      - Check words against the word list
//	wordle words                - Show word list information
//	wordle format <in> <out>    - Convert the NYT word list into the game's format
//
// Global flags:
//
//	--config <path>     - Path to config YAML (default: search order)
//	--seed <value>      - Set RNG seed for a reproducible secret word
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the five-letter word in six tries",
	Long: `Wordle is a terminal word-guessing game.

Guess the hidden five-letter word in six tries. After each guess the
tiles show which letters are in the right place (green), in the word
but elsewhere (yellow), or not in the word (gray).

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  check    - Check words against the word list
  words    - Show word list information
  format   - Convert the NYT word list into the game's format

Examples:
  wordle
  wordle play --seed 42
  wordle serve --ssh :2222
  wordle check cigar rarer`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(formatCmd)
}

// newLogger creates the stderr logger honoring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadConfig loads the configuration and reports where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("configuration loaded", "source", src)
	return cfg, nil
}

// openBank reads the configured word list and builds the word bank.
// A missing or undersized list is fatal for every command that plays.
func openBank(cfg config.WordsConfig, logger *log.Logger) (*wordle.WordBank, error) {
	var (
		list []string
		err  error
	)

	if cfg.Path == "" {
		if cfg.Total != words.DefaultTotal || cfg.AnswerIndex != words.DefaultAnswerIndex {
			logger.Warn("words.total and words.answer_index ignored for the built-in list")
		}
		list, err = words.LoadDefault()
		cfg.Total, cfg.AnswerIndex = words.DefaultTotal, words.DefaultAnswerIndex
	} else {
		path, expandErr := config.ExpandHome(cfg.Path)
		if expandErr != nil {
			return nil, expandErr
		}
		list, err = words.LoadFile(path, cfg.Total)
	}
	if err != nil {
		return nil, err
	}

	bank, err := wordle.NewWordBank(list, cfg.AnswerIndex)
	if err != nil {
		return nil, err
	}

	logger.Debug("word list loaded", "words", bank.Len(), "answers", bank.AnswerCount())
	return bank, nil
}
