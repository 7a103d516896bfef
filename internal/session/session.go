// internal/session/session.go
//
// GameSession: owns the active round and the leaderboard.
// Responsibilities:
//   - Start and reset rounds from the vocabulary.
//   - Route guesses to the active round.
//   - On a win, ask for a player name once and record the score.
//   - Advance to a fresh round as soon as a round finishes.
//   - Expose read-only snapshots for the presentation layer.
//
// Notes:
//   - A Session is not safe for concurrent use. Callers serialize access
//     (the HTTP server holds a mutex around every call).

package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/leaderboard"
)

// NamePrompt asks the player for a leaderboard name after a win.
// An empty result means no entry is recorded.
type NamePrompt func(score int) string

// Summary describes a round that just finished.
type Summary struct {
	RoundID           string      `json:"roundId"`
	Answer            string      `json:"answer"`
	Status            game.Status `json:"status"`
	AttemptsRemaining int         `json:"attemptsRemaining"`
	Recorded          bool        `json:"recorded"`
	Name              string      `json:"name,omitempty"`
}

// Result is returned by SubmitGuess.
type Result struct {
	Outcome  game.Outcome `json:"outcome"`
	Finished *Summary     `json:"finished,omitempty"` // set when the guess ended the round
}

// Snapshot is everything a renderer needs to draw the current round.
type Snapshot struct {
	RoundID           string              `json:"roundId"`
	Display           string              `json:"display"`
	AttemptsRemaining int                 `json:"attemptsRemaining"`
	MaxAttempts       int                 `json:"maxAttempts"`
	Mistakes          int                 `json:"mistakes"`
	Status            game.Status         `json:"status"`
	Guessed           []string            `json:"guessed"`
	Leaderboard       []leaderboard.Entry `json:"leaderboard"`
}

// Session orchestrates round lifecycle.
type Session struct {
	vocab  []string
	rng    game.Rand
	board  leaderboard.Store
	prompt NamePrompt
	log    zerolog.Logger

	round *game.Round
}

// Option configures a Session.
type Option func(*Session)

// WithLeaderboard uses store instead of a fresh in-memory leaderboard.
func WithLeaderboard(store leaderboard.Store) Option {
	return func(s *Session) { s.board = store }
}

// WithNamePrompt sets the prompt used when SubmitGuess is given none.
func WithNamePrompt(p NamePrompt) Option {
	return func(s *Session) { s.prompt = p }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New validates the vocabulary and starts the first round. Every entry must
// be Playable once trimmed and lowercased; words.New produces such a list.
func New(vocabulary []string, rng game.Rand, opts ...Option) (*Session, error) {
	if len(vocabulary) == 0 {
		return nil, game.ErrEmptyVocabulary
	}
	if rng == nil {
		return nil, errors.New("session: nil random source")
	}
	for _, w := range vocabulary {
		if !game.Playable(strings.ToLower(strings.TrimSpace(w))) {
			return nil, fmt.Errorf("session: %q: %w", w, game.ErrInvalidWord)
		}
	}
	s := &Session{
		vocab: vocabulary,
		rng:   rng,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.board == nil {
		s.board = leaderboard.NewMemoryStore()
	}
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the active round and starts a fresh one.
func (s *Session) NewGame() error {
	r, err := game.Start(s.vocab, s.rng)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.round = r
	s.log.Debug().Str("round", r.ID).Int("length", len([]rune(r.Answer()))).Msg("round started")
	return nil
}

// SubmitGuess applies letter to the active round.
//
// If the guess wins the round, prompt (or the session default when prompt is
// nil) is called exactly once and a non-blank name is recorded with the
// remaining attempts as score. Any terminal round is then replaced by a new
// one before returning. Rejected guesses return the game package's sentinel
// errors and leave the session unchanged.
func (s *Session) SubmitGuess(letter string, prompt NamePrompt) (Result, error) {
	out, err := s.round.Guess(letter)
	if err != nil {
		return Result{Outcome: out}, err
	}
	res := Result{Outcome: out}
	if !out.Status.Terminal() {
		return res, nil
	}

	res.Finished = s.commit(prompt)
	if err := s.NewGame(); err != nil {
		return res, err
	}
	return res, nil
}

// commit records the finished round and summarises it.
func (s *Session) commit(prompt NamePrompt) *Summary {
	r := s.round
	sum := &Summary{
		RoundID:           r.ID,
		Answer:            r.Answer(),
		Status:            r.Status(),
		AttemptsRemaining: r.AttemptsRemaining(),
	}
	if sum.Status != game.StatusWon {
		s.log.Info().Str("round", r.ID).Str("answer", sum.Answer).Msg("round lost")
		return sum
	}

	if prompt == nil {
		prompt = s.prompt
	}
	if prompt != nil {
		if name := strings.TrimSpace(prompt(sum.AttemptsRemaining)); name != "" {
			s.board.Insert(name, sum.AttemptsRemaining)
			sum.Recorded, sum.Name = true, name
		}
	}
	s.log.Info().
		Str("round", r.ID).
		Int("score", sum.AttemptsRemaining).
		Bool("recorded", sum.Recorded).
		Msg("round won")
	return sum
}

// DisplayWord returns the masked word of the active round.
func (s *Session) DisplayWord() string { return s.round.Display() }

// AttemptsRemaining returns the active round's remaining wrong guesses.
func (s *Session) AttemptsRemaining() int { return s.round.AttemptsRemaining() }

// Status returns the active round's status.
func (s *Session) Status() game.Status { return s.round.Status() }

// Leaderboard returns the ranked leaderboard.
func (s *Session) Leaderboard() []leaderboard.Entry { return s.board.Ranked() }

// Snapshot captures the active round and the top limit leaderboard entries
// (all when limit <= 0).
func (s *Session) Snapshot(limit int) Snapshot {
	r := s.round
	return Snapshot{
		RoundID:           r.ID,
		Display:           r.Display(),
		AttemptsRemaining: r.AttemptsRemaining(),
		MaxAttempts:       game.MaxAttempts,
		Mistakes:          r.Mistakes(),
		Status:            r.Status(),
		Guessed:           r.Guessed(),
		Leaderboard:       leaderboard.Top(s.board, limit),
	}
}
