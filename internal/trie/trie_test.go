package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vocab = []string{"computer", "science", "java", "hangman", "programming", "university", "technology"}

func TestTrie_InsertedWordsAndPrefixes(t *testing.T) {
	tr := FromWords(vocab)

	for _, w := range vocab {
		assert.True(t, tr.ContainsWord(w), "word %q", w)
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			p := string(runes[:i])
			assert.True(t, tr.ContainsPrefix(p), "prefix %q of %q", p, w)
		}
	}
}

func TestTrie_UnrelatedStrings(t *testing.T) {
	tr := FromWords(vocab)

	cases := []struct {
		name   string
		in     string
		word   bool
		prefix bool
	}{
		{name: "unrelated word", in: "golang", word: false, prefix: false},
		{name: "strict prefix is not a word", in: "jav", word: false, prefix: true},
		{name: "extension of a word", in: "javas", word: false, prefix: false},
		{name: "shared prefix", in: "prog", word: false, prefix: true},
		{name: "uppercase is distinct", in: "Java", word: false, prefix: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.word, tr.ContainsWord(tc.in))
			assert.Equal(t, tc.prefix, tr.ContainsPrefix(tc.in))
		})
	}
}

func TestTrie_InsertIsIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("java")
	tr.Insert("java")
	tr.Insert("")

	require.Equal(t, 1, tr.Len())
	assert.Equal(t, []string{"java"}, tr.WithPrefix("", 0))
}

func TestTrie_EmptyPrefix(t *testing.T) {
	assert.False(t, New().ContainsPrefix(""))
	assert.True(t, FromWords([]string{"a"}).ContainsPrefix(""))
}

func TestTrie_SharedPrefixSharesNodes(t *testing.T) {
	tr := FromWords([]string{"tech", "technology"})

	require.Equal(t, 2, tr.Len())
	n := tr.walk("tech")
	require.NotNil(t, n)
	assert.True(t, n.end)
	assert.Len(t, n.children, 1)
}

func TestTrie_WithPrefix(t *testing.T) {
	tr := FromWords([]string{"java", "jar", "jam", "jamboree", "kiwi"})

	assert.Equal(t, []string{"jam", "jamboree", "jar", "java"}, tr.WithPrefix("ja", 0))
	assert.Equal(t, []string{"jam", "jamboree"}, tr.WithPrefix("ja", 2))
	assert.Empty(t, tr.WithPrefix("x", 0))
}
