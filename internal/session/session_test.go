package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/leaderboard"
)

// zeroRand always picks index 0, so a "java" round starts with only 'j' shown.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func newJava(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := New([]string{"java"}, zeroRand{}, opts...)
	require.NoError(t, err)
	return s
}

func play(t *testing.T, s *Session, letters string, prompt NamePrompt) Result {
	t.Helper()
	var res Result
	for _, l := range letters {
		var err error
		res, err = s.SubmitGuess(string(l), prompt)
		require.NoError(t, err, "guess %q", l)
	}
	return res
}

func TestNew_EmptyVocabulary(t *testing.T) {
	_, err := New(nil, zeroRand{})
	require.ErrorIs(t, err, game.ErrEmptyVocabulary)
}

func TestNew_NilRand(t *testing.T) {
	_, err := New([]string{"java"}, nil)
	require.Error(t, err)
}

func TestNew_RejectsUnplayableWords(t *testing.T) {
	for _, vocab := range [][]string{{" "}, {"a"}, {"mmmm"}, {"java", "Java!"}, {"b4"}} {
		_, err := New(vocab, zeroRand{})
		require.ErrorIs(t, err, game.ErrInvalidWord, "%q", vocab)
	}
}

func TestNew_AcceptsUntrimmedWords(t *testing.T) {
	s, err := New([]string{" JAVA "}, zeroRand{})
	require.NoError(t, err)
	assert.Equal(t, "j _ _ _", s.DisplayWord())
	assert.Equal(t, game.StatusInProgress, s.Status())
}

func TestSession_InitialSnapshot(t *testing.T) {
	s := newJava(t)

	assert.Equal(t, "j _ _ _", s.DisplayWord())
	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
	assert.Equal(t, game.StatusInProgress, s.Status())
	assert.Empty(t, s.Leaderboard())

	snap := s.Snapshot(0)
	assert.Equal(t, 0, snap.Mistakes)
	assert.Equal(t, game.MaxAttempts, snap.MaxAttempts)
	assert.NotEmpty(t, snap.RoundID)
}

func TestSession_WinRecordsScoreAndAdvances(t *testing.T) {
	s := newJava(t)
	firstID := s.Snapshot(0).RoundID

	calls := 0
	prompt := func(score int) string {
		calls++
		assert.Equal(t, 5, score)
		return "  ann "
	}
	play(t, s, "az", prompt)
	res := play(t, s, "v", prompt)

	require.NotNil(t, res.Finished)
	assert.Equal(t, 1, calls)
	assert.Equal(t, game.StatusWon, res.Outcome.Status)
	assert.Equal(t, "java", res.Finished.Answer)
	assert.True(t, res.Finished.Recorded)
	assert.Equal(t, "ann", res.Finished.Name)

	ranked := s.Leaderboard()
	require.Len(t, ranked, 1)
	assert.Equal(t, "ann", ranked[0].Name)
	assert.Equal(t, 5, ranked[0].Score)

	// A fresh round is already in play.
	assert.Equal(t, game.StatusInProgress, s.Status())
	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
	assert.Equal(t, "j _ _ _", s.DisplayWord())
	assert.NotEqual(t, firstID, s.Snapshot(0).RoundID)
}

func TestSession_BlankNameSkipsLeaderboard(t *testing.T) {
	s := newJava(t)

	res := play(t, s, "av", func(int) string { return "   " })

	require.NotNil(t, res.Finished)
	assert.False(t, res.Finished.Recorded)
	assert.Empty(t, s.Leaderboard())
}

func TestSession_DefaultPrompt(t *testing.T) {
	s := newJava(t, WithNamePrompt(func(int) string { return "dflt" }))

	play(t, s, "av", nil)

	ranked := s.Leaderboard()
	require.Len(t, ranked, 1)
	assert.Equal(t, "dflt", ranked[0].Name)
	assert.Equal(t, game.MaxAttempts, ranked[0].Score)
}

func TestSession_NoPromptNoEntry(t *testing.T) {
	s := newJava(t)

	res := play(t, s, "av", nil)
	require.NotNil(t, res.Finished)
	assert.Empty(t, s.Leaderboard())
}

func TestSession_LossNeverPrompts(t *testing.T) {
	s := newJava(t)
	prompt := func(int) string {
		t.Fatal("prompt called on a lost round")
		return ""
	}

	res := play(t, s, "qwxyzb", prompt)

	require.NotNil(t, res.Finished)
	assert.Equal(t, game.StatusLost, res.Finished.Status)
	assert.Equal(t, 0, res.Finished.AttemptsRemaining)
	assert.Equal(t, "java", res.Finished.Answer)
	assert.Equal(t, game.StatusInProgress, s.Status())
	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
}

func TestSession_RejectedGuessesLeaveStateAlone(t *testing.T) {
	s := newJava(t)
	play(t, s, "z", nil)

	_, err := s.SubmitGuess("z", nil)
	require.ErrorIs(t, err, game.ErrAlreadyGuessed)
	_, err = s.SubmitGuess("12", nil)
	require.ErrorIs(t, err, game.ErrInvalidGuess)

	assert.Equal(t, 5, s.AttemptsRemaining())
	assert.Equal(t, []string{"z"}, s.Snapshot(0).Guessed)
}

func TestSession_NewGameResets(t *testing.T) {
	s := newJava(t)
	play(t, s, "qa", nil)
	require.Equal(t, 5, s.AttemptsRemaining())

	require.NoError(t, s.NewGame())
	assert.Equal(t, game.MaxAttempts, s.AttemptsRemaining())
	assert.Equal(t, "j _ _ _", s.DisplayWord())
	assert.Empty(t, s.Snapshot(0).Guessed)
}

func TestSession_LeaderboardPersistsAcrossRounds(t *testing.T) {
	store := leaderboard.NewMemoryStore()
	s := newJava(t, WithLeaderboard(store))

	play(t, s, "qav", func(int) string { return "ann" })
	play(t, s, "av", func(int) string { return "bob" })
	require.NoError(t, s.NewGame())

	ranked := s.Leaderboard()
	require.Len(t, ranked, 2)
	assert.Equal(t, "bob", ranked[0].Name)
	assert.Equal(t, "ann", ranked[1].Name)
	assert.Equal(t, 2, store.Len())
	assert.Len(t, s.Snapshot(1).Leaderboard, 1)
}
