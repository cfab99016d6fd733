package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// localPlayer is the statistics key for local play.
const localPlayer = "local"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  a-z        - Type a letter
  Backspace  - Delete a letter
  Enter      - Submit the guess (new game after the round ends)
  Ctrl+N     - New game
  Tab        - Statistics for this session
  Esc/Ctrl+C - Quit

Statistics are kept in memory and reset when the program exits.

Examples:
  wordle play
  wordle play --seed 42
  wordle play --config ./my-wordle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
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

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := wordle.NewGame(bank, rand.New(rand.NewSource(seed)))

	// Open statistics store
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open statistics store", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// Run the game
	runErr := tui.Run(game, store, localPlayer, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
