package wordle

// Verdict is the per-letter outcome of scoring a guess.
type Verdict uint8

const (
	Absent  Verdict = iota // letter not available to match
	Present                // letter in the secret, different position
	Correct                // letter in the right position
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Absent:
		return "Absent"
	case Present:
		return "Present"
	case Correct:
		return "Correct"
	default:
		return "Unknown"
	}
}

// Emoji returns the square used in share text.
func (v Verdict) Emoji() string {
	switch v {
	case Correct:
		return "🟩"
	case Present:
		return "🟨"
	default:
		return "⬛"
	}
}

// GuessResult is the scored outcome of one accepted guess.
// It is immutable once created; accessors return copies.
type GuessResult struct {
	letters [WordLength]byte
	colors  [WordLength]Verdict
	index   int
}

// NewGuessResult builds a result from a guess, its verdicts and its row index.
func NewGuessResult(guess string, colors [WordLength]Verdict, index int) GuessResult {
	var r GuessResult
	copy(r.letters[:], guess)
	r.colors = colors
	r.index = index
	return r
}

// Letters returns the letters of the guess, in order.
func (r GuessResult) Letters() [WordLength]byte {
	return r.letters
}

// Colors returns the verdict for each position.
func (r GuessResult) Colors() [WordLength]Verdict {
	return r.colors
}

// Index returns the 0-based row this guess occupies.
func (r GuessResult) Index() int {
	return r.index
}

// Word returns the guess as a string.
func (r GuessResult) Word() string {
	return string(r.letters[:])
}

// Solved reports whether every position is Correct.
func (r GuessResult) Solved() bool {
	for _, c := range r.colors {
		if c != Correct {
			return false
		}
	}
	return true
}
