// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Start rounds: pick a word, pre-reveal a few letters, reset attempts.
//   - Validate and apply letter guesses.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - A Round is not safe for concurrent use; the owner serializes calls.
//   - Randomness is injected through Rand so tests can script it.

package game

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Round holds the state of one playthrough.
type Round struct {
	ID       string            // Unique round identifier (UUID).
	answer   []rune            // Target word, lowercase.
	revealed map[rune]struct{} // Letters disclosed so far; only grows.
	guessed  map[rune]struct{} // Letters the player submitted; only grows.
	attempts int               // Wrong guesses left, floor 0.
}

// Start constructs a new round from vocabulary.
//
// The word is drawn uniformly via rng. max(1, len/4) distinct positions are
// then drawn without replacement and their letters revealed. A drawn word
// that is not Playable returns ErrInvalidWord.
func Start(vocabulary []string, rng Rand) (*Round, error) {
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	word := strings.ToLower(strings.TrimSpace(vocabulary[rng.IntN(len(vocabulary))]))
	if !Playable(word) {
		return nil, fmt.Errorf("start round: %q: %w", word, ErrInvalidWord)
	}

	r := &Round{
		ID:       uuid.NewString(),
		answer:   []rune(word),
		revealed: make(map[rune]struct{}),
		guessed:  make(map[rune]struct{}),
		attempts: MaxAttempts,
	}
	for _, pos := range revealPositions(len(r.answer), rng) {
		r.revealed[r.answer[pos]] = struct{}{}
	}
	return r, nil
}

// Playable reports whether word can start a round that is not already won:
// it is non-empty, letters only, and has more distinct letters than the
// initial reveal can disclose.
func Playable(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	for _, ch := range runes {
		if !unicode.IsLetter(ch) {
			return false
		}
	}
	return len(lo.Uniq(runes)) > revealCount(len(runes))
}

func revealCount(n int) int { return max(1, n/4) }

// revealPositions draws max(1, n/4) distinct indexes in [0, n) using a
// partial Fisher–Yates shuffle.
func revealPositions(n int, rng Rand) []int {
	count := revealCount(n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:count]
}

// Guess validates and applies a single-letter guess, mutating the round.
//
// Validation rules, checked in order (each rejection leaves the round untouched):
//   - Guess must be exactly one letter after trimming (ErrInvalidGuess).
//   - Letter must not be guessed or revealed already (ErrAlreadyGuessed).
//   - Round must not be finished (ErrRoundOver).
//
// A hit reveals every occurrence of the letter; a miss costs one attempt.
func (r *Round) Guess(letter string) (Outcome, error) {
	ch, ok := parseLetter(letter)
	if !ok {
		return r.outcome("", false), ErrInvalidGuess
	}
	l := string(ch)
	if r.seen(ch) {
		return r.outcome(l, false), ErrAlreadyGuessed
	}
	if r.Terminal() {
		return r.outcome(l, false), ErrRoundOver
	}

	r.guessed[ch] = struct{}{}
	hit := slices.Contains(r.answer, ch)
	if hit {
		r.revealed[ch] = struct{}{}
	} else if r.attempts > 0 {
		r.attempts--
	}
	return r.outcome(l, hit), nil
}

// parseLetter normalizes s to a single lowercase letter.
func parseLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(ch) {
		return 0, false
	}
	return unicode.ToLower(ch), true
}

func (r *Round) seen(ch rune) bool {
	if _, ok := r.guessed[ch]; ok {
		return true
	}
	_, ok := r.revealed[ch]
	return ok
}

func (r *Round) outcome(letter string, hit bool) Outcome {
	return Outcome{
		Letter:            letter,
		Hit:               hit,
		Status:            r.Status(),
		Display:           r.Display(),
		AttemptsRemaining: r.attempts,
	}
}

// Status derives the round state. WON wins over LOST.
func (r *Round) Status() Status {
	if r.solved() {
		return StatusWon
	}
	if r.attempts == 0 {
		return StatusLost
	}
	return StatusInProgress
}

// Terminal reports whether the round is WON or LOST.
func (r *Round) Terminal() bool { return r.Status().Terminal() }

func (r *Round) solved() bool {
	for _, ch := range r.answer {
		if _, ok := r.revealed[ch]; !ok {
			return false
		}
	}
	return true
}

// Display renders the word with unrevealed letters masked, e.g. "j a _ a".
func (r *Round) Display() string {
	var b strings.Builder
	for i, ch := range r.answer {
		if i > 0 {
			b.WriteByte(' ')
		}
		if _, ok := r.revealed[ch]; ok {
			b.WriteRune(ch)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// AttemptsRemaining returns the wrong guesses left.
func (r *Round) AttemptsRemaining() int { return r.attempts }

// Mistakes returns the wrong guesses made so far; it drives the gallows drawing.
func (r *Round) Mistakes() int { return MaxAttempts - r.attempts }

// Answer returns the target word.
func (r *Round) Answer() string { return string(r.answer) }

// Guessed returns the letters the player submitted, sorted.
func (r *Round) Guessed() []string { return sortedLetters(r.guessed) }

// Revealed returns the disclosed letters, sorted.
func (r *Round) Revealed() []string { return sortedLetters(r.revealed) }

func sortedLetters(set map[rune]struct{}) []string {
	keys := lo.Keys(set)
	slices.Sort(keys)
	return lo.Map(keys, func(ch rune, _ int) string { return string(ch) })
}
