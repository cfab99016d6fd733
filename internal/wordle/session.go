package wordle

import "strings"

// Outcome tells the presentation layer what happened to a submitted guess.
type Outcome int

const (
	OutcomeAccepted    Outcome = iota // guess scored, result is valid
	OutcomeInvalidWord                // wrong length or not in the word list; ignored
	OutcomeGameOver                   // round already ended; nothing changed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeInvalidWord:
		return "invalid word"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Submit validates the candidate against the word bank and, if it is
// acceptable and the round is still running, evaluates it.
// The returned result is only meaningful for OutcomeAccepted.
func (g *Game) Submit(candidate string) (GuessResult, Outcome) {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if !g.bank.IsValidWord(candidate) {
		return GuessResult{}, OutcomeInvalidWord
	}
	if g.IsGameOver() {
		return GuessResult{}, OutcomeGameOver
	}

	result, err := g.Evaluate(candidate)
	if err != nil {
		// Evaluate only fails for ended rounds once the bank accepted the word.
		return GuessResult{}, OutcomeGameOver
	}
	return result, OutcomeAccepted
}
