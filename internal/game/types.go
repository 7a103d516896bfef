// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Status: coarse state of a round (in_progress/won/lost).
//   - Outcome: result of evaluating one guess.
//   - Rand: the injectable randomness the engine draws from.
//   - Sentinel errors for rejected guesses and bad configuration.

package game

import "errors"

// MaxAttempts is the number of wrong guesses a round tolerates.
const MaxAttempts = 6

// Placeholder masks an unrevealed letter in the display word.
const Placeholder = '_'

// Status represents where a round is in its lifecycle.
// IN_PROGRESS is initial; WON and LOST are terminal and one-way.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether s is WON or LOST.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

var (
	// ErrInvalidGuess: the guess is not exactly one alphabetic character.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrAlreadyGuessed: the letter was submitted (or revealed) earlier this round.
	ErrAlreadyGuessed = errors.New("letter already guessed")
	// ErrRoundOver: the round is WON or LOST and accepts no more guesses.
	ErrRoundOver = errors.New("round finished")
	// ErrEmptyVocabulary: there is no word to start a round with.
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	// ErrInvalidWord: a vocabulary entry is not a playable word (see Playable).
	ErrInvalidWord = errors.New("invalid word in vocabulary")
)

// Rand is the source of uniform randomness used for word and reveal
// selection. *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
}

// Outcome describes the round after a guess was evaluated.
// When Guess returns an error the outcome still reflects the unchanged round.
type Outcome struct {
	Letter            string `json:"letter,omitempty"`
	Hit               bool   `json:"hit"`
	Status            Status `json:"status"`
	Display           string `json:"display"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
}
