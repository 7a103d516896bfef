// assets/embed.go
//
// Embedded default vocabulary, used when WORDS_FILE is not configured.

package assets

import (
	"bufio"
	"embed"
)

//go:embed vocabulary.txt
var FS embed.FS

// readLines returns the lines of name as written. Filtering belongs to the
// words package.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
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

// Vocabulary returns the embedded default word list.
func Vocabulary() ([]string, error) {
	return readLines("vocabulary.txt")
}
