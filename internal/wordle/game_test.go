package wordle

import (
	"errors"
	"math/rand"
	"testing"
)

// fixedSource always picks the same offset into the answer range.
type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

var testWords = []string{
	"rarer", "lolly", "aback", "crane", "hello", "speed", "eerie",
	"cigar", "allot", "rebut", "sissy", "humph", "abide",
}

const testAnswerIndex = 7

func newTestBank(t *testing.T) *WordBank {
	t.Helper()
	b, err := NewWordBank(testWords, testAnswerIndex)
	if err != nil {
		t.Fatalf("NewWordBank() failed: %v", err)
	}
	return b
}

func newTestGame(t *testing.T, secret string) *Game {
	t.Helper()
	g := NewGame(newTestBank(t), fixedSource(0))
	if err := g.ResetWithSecret(secret); err != nil {
		t.Fatalf("ResetWithSecret(%q) failed: %v", secret, err)
	}
	return g
}

const (
	A = Absent
	P = Present
	C = Correct
)

func TestEvaluateVerdicts(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   [WordLength]Verdict
	}{
		{
			name:   "repeated guess letter, single in secret, exact match claims it",
			secret: "cigar",
			guess:  "rarer",
			want:   [WordLength]Verdict{A, P, A, A, C},
		},
		{
			name:   "double letter guess against double letter secret",
			secret: "allot",
			guess:  "lolly",
			want:   [WordLength]Verdict{P, P, C, A, A},
		},
		{
			name:   "exact match",
			secret: "crane",
			guess:  "crane",
			want:   [WordLength]Verdict{C, C, C, C, C},
		},
		{
			name:   "single displaced letter",
			secret: "humph",
			guess:  "rebut",
			want:   [WordLength]Verdict{A, A, A, P, A},
		},
		{
			name:   "left to right tie break",
			secret: "abide",
			guess:  "speed",
			want:   [WordLength]Verdict{A, A, P, A, P},
		},
		{
			name:   "triple e against double e",
			secret: "speed",
			guess:  "eerie",
			want:   [WordLength]Verdict{P, P, A, A, A},
		},
		{
			name:   "exact matches exhaust repeated letter",
			secret: "hello",
			guess:  "lolly",
			want:   [WordLength]Verdict{A, P, C, C, A},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.secret)
			result, err := g.Evaluate(tc.guess)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tc.guess, err)
			}
			if got := result.Colors(); got != tc.want {
				t.Errorf("Evaluate(%q) vs %q = %v, want %v", tc.guess, tc.secret, got, tc.want)
			}
			if result.Word() != tc.guess {
				t.Errorf("Word() = %q, want %q", result.Word(), tc.guess)
			}
			if result.Index() != 0 {
				t.Errorf("Index() = %d, want 0", result.Index())
			}
		})
	}
}

func TestEvaluateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	letters := "abcde" // small alphabet to force repeats

	randomWord := func() string {
		b := make([]byte, WordLength)
		for i := range b {
			b[i] = letters[rng.Intn(len(letters))]
		}
		return string(b)
	}

	for n := 0; n < 2000; n++ {
		secret, guess := randomWord(), randomWord()
		g := newTestGame(t, secret)
		result, err := g.Evaluate(guess)
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", guess, err)
		}
		colors := result.Colors()

		credited := make(map[byte]int)
		for i := 0; i < WordLength; i++ {
			if (colors[i] == Correct) != (guess[i] == secret[i]) {
				t.Fatalf("secret %q guess %q: position %d is %v", secret, guess, i, colors[i])
			}
			if colors[i] != Absent {
				credited[guess[i]]++
			}
		}

		counts := letterCounts(secret)
		for l, c := range credited {
			if c > counts[l-'a'] {
				t.Fatalf("secret %q guess %q: letter %c credited %d times, secret has %d",
					secret, guess, l, c, counts[l-'a'])
			}
		}
	}
}

func TestWinOnFirstGuess(t *testing.T) {
	g := newTestGame(t, "cigar")

	result, err := g.Evaluate("cigar")
	if err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}
	if !result.Solved() {
		t.Errorf("Colors() = %v, want all Correct", result.Colors())
	}
	if !g.HasWon() {
		t.Error("HasWon() should be true after guessing the secret")
	}
	if !g.IsGameOver() {
		t.Error("IsGameOver() should be true after a win")
	}
	if g.IsOutOfTurns() {
		t.Error("IsOutOfTurns() should be false after one guess")
	}
}

func TestOutOfTurns(t *testing.T) {
	g := newTestGame(t, "cigar")

	for i := 0; i < MaxGuesses; i++ {
		if g.IsGameOver() {
			t.Fatalf("game over after %d guesses", i)
		}
		result, err := g.Evaluate("crane")
		if err != nil {
			t.Fatalf("Evaluate() #%d failed: %v", i, err)
		}
		if result.Index() != i {
			t.Errorf("Index() = %d, want %d", result.Index(), i)
		}
	}

	if !g.IsOutOfTurns() {
		t.Error("IsOutOfTurns() should be true after max guesses")
	}
	if !g.IsGameOver() {
		t.Error("IsGameOver() should be true after max guesses")
	}
	if g.HasWon() {
		t.Error("HasWon() should be false")
	}
}

func TestEvaluateAfterGameOver(t *testing.T) {
	g := newTestGame(t, "cigar")
	if _, err := g.Evaluate("cigar"); err != nil {
		t.Fatalf("Evaluate() failed: %v", err)
	}

	_, err := g.Evaluate("crane")
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("Evaluate() after win error = %v, want ErrGameOver", err)
	}
	if g.GuessCount() != 1 {
		t.Errorf("GuessCount() = %d, want 1", g.GuessCount())
	}
	if !g.HasWon() {
		t.Error("HasWon() should stay true")
	}

	lost := newTestGame(t, "cigar")
	for i := 0; i < MaxGuesses; i++ {
		lost.Evaluate("crane")
	}
	if _, err := lost.Evaluate("cigar"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Evaluate() after loss error = %v, want ErrGameOver", err)
	}
	if lost.GuessCount() != MaxGuesses {
		t.Errorf("GuessCount() = %d, want %d", lost.GuessCount(), MaxGuesses)
	}
	if lost.HasWon() {
		t.Error("HasWon() must not change after the round ended")
	}
}

func TestEvaluateMalformed(t *testing.T) {
	g := newTestGame(t, "cigar")

	for _, guess := range []string{"", "cig", "cigars", "CIGAR", "ci9ar"} {
		if _, err := g.Evaluate(guess); !errors.Is(err, ErrMalformedGuess) {
			t.Errorf("Evaluate(%q) error = %v, want ErrMalformedGuess", guess, err)
		}
	}
	if g.GuessCount() != 0 {
		t.Errorf("GuessCount() = %d, want 0", g.GuessCount())
	}
}

func TestReset(t *testing.T) {
	g := NewGame(newTestBank(t), fixedSource(2))
	if g.Secret() != "rebut" {
		t.Fatalf("Secret() = %q, want rebut", g.Secret())
	}

	g.Evaluate("rebut")
	if !g.IsGameOver() {
		t.Fatal("expected game over")
	}

	g.Reset()
	if g.IsGameOver() {
		t.Error("IsGameOver() should be false after Reset")
	}
	if g.GuessCount() != 0 {
		t.Errorf("GuessCount() = %d, want 0", g.GuessCount())
	}
	if g.HasWon() {
		t.Error("HasWon() should be false after Reset")
	}
	if len(g.Results()) != 0 {
		t.Errorf("Results() has %d entries, want 0", len(g.Results()))
	}
}

func TestResetRecomputesCounts(t *testing.T) {
	g := newTestGame(t, "sissy")
	snap := g.Snapshot()
	if snap.Counts['s'-'a'] != 3 || snap.Counts['i'-'a'] != 1 || snap.Counts['y'-'a'] != 1 {
		t.Errorf("Counts for sissy = %v", snap.Counts)
	}

	if err := g.ResetWithSecret("HUMPH"); err != nil {
		t.Fatalf("ResetWithSecret() failed: %v", err)
	}
	snap = g.Snapshot()
	if snap.Secret != "humph" {
		t.Errorf("Secret = %q, want humph", snap.Secret)
	}
	if snap.Counts['s'-'a'] != 0 || snap.Counts['h'-'a'] != 2 {
		t.Errorf("Counts for humph = %v", snap.Counts)
	}

	if err := g.ResetWithSecret("hum"); err == nil {
		t.Error("ResetWithSecret(hum) should fail")
	}
}

func TestSnapshotState(t *testing.T) {
	g := newTestGame(t, "cigar")
	if s := g.Snapshot().State; s != StatePlaying {
		t.Errorf("State = %q, want %q", s, StatePlaying)
	}

	g.Evaluate("crane")
	g.Evaluate("cigar")
	snap := g.Snapshot()
	if snap.State != StateWon {
		t.Errorf("State = %q, want %q", snap.State, StateWon)
	}
	if len(snap.Results) != 2 || snap.Results[1].Index() != 1 {
		t.Errorf("Results = %v", snap.Results)
	}

	lost := newTestGame(t, "cigar")
	for i := 0; i < MaxGuesses; i++ {
		lost.Evaluate("hello")
	}
	if s := lost.Snapshot().State; s != StateLost {
		t.Errorf("State = %q, want %q", s, StateLost)
	}
}

func TestGuessResultImmutable(t *testing.T) {
	g := newTestGame(t, "cigar")
	result, _ := g.Evaluate("crane")

	colors := result.Colors()
	colors[0] = Absent
	if result.Colors()[0] != Correct {
		t.Error("modifying Colors() copy changed the result")
	}

	results := g.Results()
	results[0] = GuessResult{}
	if g.Results()[0].Word() != "crane" {
		t.Error("modifying Results() copy changed the game")
	}
}
