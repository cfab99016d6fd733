package wordle

import "errors"

var (
	// ErrGameOver is returned when a guess is evaluated after the round has ended.
	ErrGameOver = errors.New("wordle: game is over")

	// ErrMalformedGuess is returned for guesses that are not five lowercase letters.
	ErrMalformedGuess = errors.New("wordle: guess must be five lowercase letters")

	// ErrEmptyBank is returned when a word bank would have no answers.
	ErrEmptyBank = errors.New("wordle: word list is empty")

	// ErrAnswerRange is returned when the answer index lies outside the word list.
	ErrAnswerRange = errors.New("wordle: answer index out of range")
)
