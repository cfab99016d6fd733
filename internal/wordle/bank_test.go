package wordle

import (
	"errors"
	"testing"
)

func TestNewWordBankErrors(t *testing.T) {
	tests := []struct {
		name        string
		words       []string
		answerIndex int
		wantErr     error
	}{
		{"empty list", nil, 0, ErrEmptyBank},
		{"negative answer index", []string{"cigar"}, -1, ErrAnswerRange},
		{"answer index past end", []string{"cigar"}, 1, ErrAnswerRange},
		{"short word", []string{"cigar", "cig"}, 0, nil},
		{"non-letter", []string{"cigar", "ci-ar"}, 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWordBank(tc.words, tc.answerIndex)
			if err == nil {
				t.Fatal("NewWordBank() should fail")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("NewWordBank() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIsValidWord(t *testing.T) {
	b := newTestBank(t)

	tests := []struct {
		word     string
		expected bool
	}{
		{"rarer", true},  // guess-only word
		{"cigar", true},  // answer word
		{"CIGAR", true},  // normalized to lowercase
		{"zzzzz", false}, // not in list
		{"ciga", false},  // too short
		{"cigars", false},
		{"", false},
	}

	for _, tc := range tests {
		for i := 0; i < 3; i++ {
			if got := b.IsValidWord(tc.word); got != tc.expected {
				t.Errorf("IsValidWord(%q) call %d = %v, want %v", tc.word, i, got, tc.expected)
			}
		}
	}
}

func TestPickSecretStaysInAnswerRange(t *testing.T) {
	b := newTestBank(t)

	if b.AnswerCount() != len(testWords)-testAnswerIndex {
		t.Fatalf("AnswerCount() = %d, want %d", b.AnswerCount(), len(testWords)-testAnswerIndex)
	}

	seen := make(map[string]bool)
	for i := 0; i < b.AnswerCount()*2; i++ {
		w := b.PickSecret(fixedSource(i))
		if !b.IsAnswer(w) {
			t.Errorf("PickSecret() = %q, not an answer word", w)
		}
		seen[w] = true
	}
	if len(seen) != b.AnswerCount() {
		t.Errorf("PickSecret() reached %d answers, want %d", len(seen), b.AnswerCount())
	}
	if seen["rarer"] || seen["crane"] {
		t.Error("PickSecret() returned a guess-only word")
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	b := newTestBank(t)
	words := b.Words()
	words[0] = "zzzzz"

	if b.IsValidWord("zzzzz") {
		t.Error("modifying Words() copy changed the bank")
	}
	if b.Len() != len(testWords) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(testWords))
	}
}
