// internal/words/words.go
//
// Provides the fixed vocabulary rounds are drawn from.
//
// Responsibilities:
//   - Load the word list from a file or fall back to the embedded default.
//   - Normalize: trim, lowercase, skip blanks and "#" comments, drop words
//     that cannot make a round (game.Playable), remove duplicates.
//   - Index the list in a trie for word/prefix lookups.
//
// Loading behavior (Load):
//   1. If path is non-empty, read one word per line from that file.
//   2. Otherwise use assets.Vocabulary().
//   An empty result is fatal (game.ErrEmptyVocabulary).

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/trie"
)

// Vocabulary is a loaded, normalized word list plus its prefix index.
type Vocabulary struct {
	words []string
	index *trie.Trie
}

// Lookup is the answer to a word/prefix query.
type Lookup struct {
	Query   string   `json:"query"`
	Word    bool     `json:"word"`    // query is a vocabulary word
	Prefix  bool     `json:"prefix"`  // some word starts with query
	Matches []string `json:"matches"` // words under the prefix, capped
}

// New normalizes list and indexes it.
func New(list []string) (*Vocabulary, error) {
	words := normalize(list)
	if len(words) == 0 {
		return nil, fmt.Errorf("words: %w", game.ErrEmptyVocabulary)
	}
	return &Vocabulary{words: words, index: trie.FromWords(words)}, nil
}

// Load reads the vocabulary from path, or the embedded default when path is empty.
func Load(path string) (*Vocabulary, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = readWordFile(path)
	} else {
		list, err = assets.Vocabulary()
	}
	if err != nil {
		return nil, fmt.Errorf("words: load: %w", err)
	}
	return New(list)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize lowercases and filters list, keeping first occurrences.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if strings.HasPrefix(w, "#") || !game.Playable(w) {
			continue
		}
		out = append(out, w)
	}
	return lo.Uniq(out)
}

// Words returns the word list. Callers must not modify it.
func (v *Vocabulary) Words() []string { return v.words }

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int { return len(v.words) }

// IsWord reports whether w is in the vocabulary.
func (v *Vocabulary) IsWord(w string) bool {
	return v.index.ContainsWord(strings.ToLower(w))
}

// HasPrefix reports whether some vocabulary word starts with p.
func (v *Vocabulary) HasPrefix(p string) bool {
	return v.index.ContainsPrefix(strings.ToLower(p))
}

// Lookup answers a query, listing at most limit matches (all when limit <= 0).
func (v *Vocabulary) Lookup(q string, limit int) Lookup {
	q = strings.ToLower(strings.TrimSpace(q))
	return Lookup{
		Query:   q,
		Word:    v.index.ContainsWord(q),
		Prefix:  v.index.ContainsPrefix(q),
		Matches: v.index.WithPrefix(q, limit),
	}
}
