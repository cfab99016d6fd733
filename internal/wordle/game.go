package wordle

import (
	"fmt"
	"strings"
)

const (
	WordLength = 5 // letters in every word
	MaxGuesses = 6 // guesses allowed per round
)

// Game holds the state of one round: the secret word, its letter counts,
// the guesses made so far and whether the player has won.
// A Game is owned by a single caller and is not safe for concurrent use.
type Game struct {
	bank *WordBank
	rng  Source

	secret  string
	counts  [26]int // multiplicity of each letter in secret
	guesses int
	won     bool
	results []GuessResult
}

// NewGame creates a game with a fresh secret drawn from bank using rng.
func NewGame(bank *WordBank, rng Source) *Game {
	g := &Game{
		bank: bank,
		rng:  rng,
	}
	g.Reset()
	return g
}

// Reset starts a new round with a new random secret.
func (g *Game) Reset() {
	g.start(g.bank.PickSecret(g.rng))
}

// ResetWithSecret starts a new round with the given secret.
// The word must be five letters; it does not have to be in the bank.
func (g *Game) ResetWithSecret(secret string) error {
	secret = strings.ToLower(secret)
	if !isWordShape(secret) {
		return fmt.Errorf("wordle: secret %q is not a %d-letter word", secret, WordLength)
	}
	g.start(secret)
	return nil
}

func (g *Game) start(secret string) {
	g.secret = secret
	g.counts = letterCounts(secret)
	g.guesses = 0
	g.won = false
	g.results = nil
}

// Evaluate scores guess against the secret and advances the round.
// The caller must have checked the guess against the word bank.
// Returns ErrGameOver without changing state once the round has ended.
func (g *Game) Evaluate(guess string) (GuessResult, error) {
	if g.IsGameOver() {
		return GuessResult{}, ErrGameOver
	}
	if !isWordShape(guess) {
		return GuessResult{}, ErrMalformedGuess
	}

	colors := g.score(guess)

	g.guesses++
	if guess == g.secret {
		g.won = true
	}

	result := NewGuessResult(guess, colors, g.guesses-1)
	g.results = append(g.results, result)
	return result, nil
}

// score runs the two-pass verdict algorithm.
//
// Pass 1 marks exact matches and claims them. Pass 2 walks left to right and
// marks a letter Present only while unclaimed copies remain in the secret, so
// repeated letters are never over-credited and Correct tiles are never recounted.
func (g *Game) score(guess string) [WordLength]Verdict {
	var colors [WordLength]Verdict // zero value is Absent
	var claimed [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == g.secret[i] {
			colors[i] = Correct
			claimed[guess[i]-'a']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if colors[i] == Correct {
			continue
		}
		l := guess[i] - 'a'
		if claimed[l] < g.counts[l] {
			colors[i] = Present
			claimed[l]++
		}
	}

	return colors
}

// IsOutOfTurns reports whether all guesses have been used.
func (g *Game) IsOutOfTurns() bool {
	return g.guesses == MaxGuesses
}

// HasWon reports whether a guess matched the secret.
func (g *Game) HasWon() bool {
	return g.won
}

// IsGameOver reports whether the round has ended.
func (g *Game) IsGameOver() bool {
	return g.IsOutOfTurns() || g.HasWon()
}

// Secret returns the current secret word.
func (g *Game) Secret() string {
	return g.secret
}

// GuessCount returns the number of guesses made this round.
func (g *Game) GuessCount() int {
	return g.guesses
}

// Results returns the scored guesses of this round, in order.
func (g *Game) Results() []GuessResult {
	out := make([]GuessResult, len(g.results))
	copy(out, g.results)
	return out
}

// letterCounts builds the 26-slot frequency table for word.
func letterCounts(word string) [26]int {
	var counts [26]int
	for i := 0; i < len(word); i++ {
		counts[word[i]-'a']++
	}
	return counts
}
