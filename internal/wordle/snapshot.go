package wordle

// StateType names the phase of a round.
type StateType string

const (
	StatePlaying StateType = "playing"
	StateWon     StateType = "won"
	StateLost    StateType = "lost"
)

// Snapshot captures the complete round state for rendering and tests.
type Snapshot struct {
	Secret  string
	Counts  [26]int
	Guesses int
	Won     bool
	Results []GuessResult
	State   StateType
}

// Snapshot returns the current round state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWon
	case g.IsOutOfTurns():
		state = StateLost
	}

	return Snapshot{
		Secret:  g.secret,
		Counts:  g.counts,
		Guesses: g.guesses,
		Won:     g.won,
		Results: g.Results(),
		State:   state,
	}
}
