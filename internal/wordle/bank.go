// Package wordle contains the game logic: the word bank, guess scoring and the
// per-round state machine. It has no UI or I/O dependencies so the terminal
// front end and the SSH server can drive it synchronously.
package wordle

import (
	"fmt"
	"strings"
)

// Source supplies random indexes for secret selection.
// *rand.Rand satisfies it; tests pass a fixed source.
type Source interface {
	Intn(n int) int
}

// WordBank holds the list of acceptable guesses and the contiguous range of
// words eligible as secrets. It is immutable after construction and safe to
// share between goroutines.
type WordBank struct {
	words       []string
	set         map[string]struct{}
	answerIndex int
}

// NewWordBank builds a bank from an ordered word list. Words from answerIndex
// to the end of the list are the answer range.
func NewWordBank(words []string, answerIndex int) (*WordBank, error) {
	if len(words) == 0 {
		return nil, ErrEmptyBank
	}
	if answerIndex < 0 || answerIndex >= len(words) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrAnswerRange, answerIndex, len(words))
	}

	b := &WordBank{
		words:       make([]string, len(words)),
		set:         make(map[string]struct{}, len(words)),
		answerIndex: answerIndex,
	}
	for i, w := range words {
		w = strings.ToLower(w)
		if !isWordShape(w) {
			return nil, fmt.Errorf("wordle: entry %d %q is not a %d-letter word", i, w, WordLength)
		}
		b.words[i] = w
		b.set[w] = struct{}{}
	}
	return b, nil
}

// IsValidWord reports whether candidate is an accepted guess.
func (b *WordBank) IsValidWord(candidate string) bool {
	candidate = strings.ToLower(candidate)
	if len(candidate) != WordLength {
		return false
	}
	_, ok := b.set[candidate]
	return ok
}

// IsAnswer reports whether word lies in the answer range.
func (b *WordBank) IsAnswer(word string) bool {
	word = strings.ToLower(word)
	for _, w := range b.words[b.answerIndex:] {
		if w == word {
			return true
		}
	}
	return false
}

// PickSecret returns a word drawn uniformly from the answer range.
func (b *WordBank) PickSecret(src Source) string {
	return b.words[b.answerIndex+src.Intn(b.AnswerCount())]
}

// Len returns the total number of words.
func (b *WordBank) Len() int {
	return len(b.words)
}

// AnswerIndex returns the index of the first answer word.
func (b *WordBank) AnswerIndex() int {
	return b.answerIndex
}

// AnswerCount returns the number of words eligible as secrets.
func (b *WordBank) AnswerCount() int {
	return len(b.words) - b.answerIndex
}

// Words returns a copy of the full word list.
func (b *WordBank) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// isWordShape reports whether s is exactly WordLength lowercase ASCII letters.
func isWordShape(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
