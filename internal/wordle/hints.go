package wordle

import (
	"fmt"
	"strings"
)

// Hints returns the best verdict seen for each guessed letter, keyed by the
// lowercase letter. Correct beats Present beats Absent. Letters never guessed
// are missing from the map.
func Hints(results []GuessResult) map[byte]Verdict {
	hints := make(map[byte]Verdict)
	for _, r := range results {
		letters, colors := r.Letters(), r.Colors()
		for i, l := range letters {
			if best, ok := hints[l]; !ok || colors[i] > best {
				hints[l] = colors[i]
			}
		}
	}
	return hints
}

// ShareText renders a spoiler-free summary of a finished round:
// a header with the number of guesses (X on a loss) and one emoji row per guess.
func ShareText(results []GuessResult, won bool) string {
	var b strings.Builder

	score := "X"
	if won {
		score = fmt.Sprintf("%d", len(results))
	}
	fmt.Fprintf(&b, "Wordle %s/%d", score, MaxGuesses)

	for _, r := range results {
		b.WriteString("\n")
		for _, c := range r.Colors() {
			b.WriteString(c.Emoji())
		}
	}
	return b.String()
}
