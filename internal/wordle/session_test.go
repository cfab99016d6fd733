package wordle

import (
	"strings"
	"testing"
)

func TestSubmit(t *testing.T) {
	g := newTestGame(t, "cigar")

	if _, out := g.Submit("zzzzz"); out != OutcomeInvalidWord {
		t.Errorf("Submit(zzzzz) = %v, want %v", out, OutcomeInvalidWord)
	}
	if _, out := g.Submit("cig"); out != OutcomeInvalidWord {
		t.Errorf("Submit(cig) = %v, want %v", out, OutcomeInvalidWord)
	}
	if g.GuessCount() != 0 {
		t.Errorf("invalid words must not count, GuessCount() = %d", g.GuessCount())
	}

	result, out := g.Submit(" Rarer ")
	if out != OutcomeAccepted {
		t.Fatalf("Submit(Rarer) = %v, want %v", out, OutcomeAccepted)
	}
	if result.Word() != "rarer" || result.Index() != 0 {
		t.Errorf("result = %q index %d", result.Word(), result.Index())
	}

	result, out = g.Submit("cigar")
	if out != OutcomeAccepted || !result.Solved() || result.Index() != 1 {
		t.Errorf("Submit(cigar) = %v solved=%v index=%d", out, result.Solved(), result.Index())
	}

	if _, out := g.Submit("crane"); out != OutcomeGameOver {
		t.Errorf("Submit after win = %v, want %v", out, OutcomeGameOver)
	}
	if g.GuessCount() != 2 {
		t.Errorf("GuessCount() = %d, want 2", g.GuessCount())
	}
}

func TestHints(t *testing.T) {
	g := newTestGame(t, "cigar")
	g.Evaluate("rarer") // r: A,A,C ; a: P ; e: A
	g.Evaluate("crane") // c: C ; r: P ; a: P ; n: A ; e: A

	hints := Hints(g.Results())
	expected := map[byte]Verdict{
		'r': Correct,
		'a': Present,
		'e': Absent,
		'c': Correct,
		'n': Absent,
	}

	if len(hints) != len(expected) {
		t.Errorf("Hints() has %d letters, want %d: %v", len(hints), len(expected), hints)
	}
	for l, want := range expected {
		if hints[l] != want {
			t.Errorf("Hints()[%c] = %v, want %v", l, hints[l], want)
		}
	}
	if _, ok := hints['z']; ok {
		t.Error("Hints() should not contain unguessed letters")
	}
}

func TestShareText(t *testing.T) {
	g := newTestGame(t, "cigar")
	g.Evaluate("rarer")
	g.Evaluate("cigar")

	text := ShareText(g.Results(), g.HasWon())
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("ShareText() has %d lines, want 3:\n%s", len(lines), text)
	}
	if lines[0] != "Wordle 2/6" {
		t.Errorf("header = %q, want %q", lines[0], "Wordle 2/6")
	}
	if lines[1] != "⬛🟨⬛⬛🟩" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "🟩🟩🟩🟩🟩" {
		t.Errorf("row 2 = %q", lines[2])
	}

	if got := ShareText(nil, false); got != "Wordle X/6" {
		t.Errorf("ShareText(loss) = %q", got)
	}
}
