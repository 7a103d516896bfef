package leaderboard

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestMemory_RankedDescending(t *testing.T) {
	s := NewMemoryStore()
	rng := rand.New(rand.NewPCG(11, 5))
	for i := 0; i < 100; i++ {
		s.Insert("p", rng.IntN(7))
	}

	ranked := s.Ranked()
	require.Len(t, ranked, 100)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestMemory_NewHighScoreFirst(t *testing.T) {
	s := NewMemoryStore()
	s.Insert("ann", 3)
	s.Insert("bob", 5)
	require.Equal(t, "bob", s.Ranked()[0].Name)

	s.Insert("cat", 6)
	assert.Equal(t, []string{"cat", "bob", "ann"}, names(s.Ranked()))
}

func TestMemory_TiesKeepInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Insert("first", 4)
	s.Insert("second", 4)
	s.Insert("third", 4)

	assert.Equal(t, []string{"first", "second", "third"}, names(s.Ranked()))
}

func TestMemory_BlankNamesIgnored(t *testing.T) {
	s := NewMemoryStore()
	s.Insert("", 6)
	s.Insert("   ", 6)
	s.Insert("  ann  ", 2)

	ranked := s.Ranked()
	require.Len(t, ranked, 1)
	assert.Equal(t, "ann", ranked[0].Name)
	assert.Equal(t, 1, s.Len())
}

func TestMemory_DuplicateNamesAllowed(t *testing.T) {
	s := NewMemoryStore()
	s.Insert("ann", 1)
	s.Insert("ann", 2)

	assert.Equal(t, 2, s.Len())
}

func TestMemory_RankedDoesNotMutate(t *testing.T) {
	s := NewMemoryStore()
	s.Insert("low", 1)
	s.Insert("high", 6)

	first := s.Ranked()
	first[0].Name = "changed"

	assert.Equal(t, []string{"high", "low"}, names(s.Ranked()))
	assert.Equal(t, "low", s.(*memory).entries[0].Name)
}

func TestTop(t *testing.T) {
	s := NewMemoryStore()
	for i, n := range []string{"a", "b", "c", "d"} {
		s.Insert(n, i)
	}

	assert.Equal(t, []string{"d", "c"}, names(Top(s, 2)))
	assert.Len(t, Top(s, 0), 4)
	assert.Len(t, Top(s, 10), 4)
}
