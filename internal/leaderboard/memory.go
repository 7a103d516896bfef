// internal/leaderboard/memory.go
//
// In-memory leaderboard of won rounds.
//
// Characteristics:
//   - Entries are (name, score) pairs; names need not be unique.
//   - Entries are never removed or mutated once inserted.
//   - Ranked() sorts descending by score; ties keep insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package leaderboard

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is one recorded win.
type Entry struct {
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	Recorded time.Time `json:"recordedAt"`
}

// Store defines the leaderboard interface.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Insert records a score. A name that is blank after trimming is ignored.
	Insert(name string, score int)

	// Ranked returns every entry sorted descending by score.
	// The returned slice is a copy; callers may modify it.
	Ranked() []Entry

	// Len returns the number of recorded entries.
	Len() int
}

// memory is a slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex // guards entries
	entries []Entry      // insertion order
	now     func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{now: time.Now}
}

// Insert appends the entry. Blank names are a silent no-op.
func (m *memory) Insert(name string, score int) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Name: name, Score: score, Recorded: m.now().UTC()})
}

// Ranked copies the entries and stable-sorts the copy by score, highest first.
func (m *memory) Ranked() []Entry {
	m.mu.RLock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Top returns the first n ranked entries of s, or all of them when n <= 0.
func Top(s Store, n int) []Entry {
	ranked := s.Ranked()
	if n > 0 && n < len(ranked) {
		return ranked[:n]
	}
	return ranked
}
