// internal/trie/trie.go
//
// Prefix tree over the game vocabulary.
// Responsibilities:
//   - Insert words (idempotent).
//   - Answer word and prefix membership queries.
//   - Enumerate words under a prefix for the lookup endpoint.
//
// Notes:
//   - Built once at startup, read-only afterwards. Concurrent readers are
//     safe as long as no Insert runs alongside them.
//   - Keys are runes, so non-ASCII vocabularies work unchanged.

package trie

import (
	"slices"

	"github.com/samber/lo"
)

// node is one position in the tree.
type node struct {
	children map[rune]*node
	end      bool // a word terminates here
}

func newNode() *node { return &node{children: make(map[rune]*node)} }

// Trie is a rune-keyed prefix tree. The zero value is not usable; call New.
type Trie struct {
	root  *node
	words int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// FromWords builds a Trie holding every word in list.
func FromWords(list []string) *Trie {
	t := New()
	for _, w := range list {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the tree. Empty words are ignored and inserting the
// same word twice leaves the tree unchanged.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.end {
		n.end = true
		t.words++
	}
}

// ContainsWord reports whether word was inserted in full.
func (t *Trie) ContainsWord(word string) bool {
	n := t.walk(word)
	return n != nil && n.end
}

// ContainsPrefix reports whether some inserted word starts with prefix.
// The empty prefix matches as soon as one word is present.
func (t *Trie) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return t.words > 0
	}
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int { return t.words }

// WithPrefix returns the words starting with prefix in lexical order.
// A positive limit caps the result size.
func (t *Trie) WithPrefix(prefix string, limit int) []string {
	start := t.walk(prefix)
	if start == nil {
		return []string{}
	}
	out := []string{}
	var collect func(n *node, acc []rune) bool
	collect = func(n *node, acc []rune) bool {
		if n.end {
			out = append(out, string(acc))
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		keys := lo.Keys(n.children)
		slices.Sort(keys)
		for _, r := range keys {
			if !collect(n.children[r], append(acc, r)) {
				return false
			}
		}
		return true
	}
	collect(start, []rune(prefix))
	return out
}

// walk follows s from the root and returns the final node, or nil if the
// path breaks off.
func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range s {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}
