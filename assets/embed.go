// assets/embed.go
//
// Embedded default word pool, used when no word file is configured.
//
// Responsibilities:
//   - Ship words.txt inside the binary.
//   - Split any word source into raw lines; trimming, "#" comments and blank
//     lines are handled by words.NewPool so file and embedded lists agree.

package assets

import (
	"bufio"
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// ReadLines returns every line of r, unmodified apart from the newline.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// WordList returns the embedded default candidate lines.
func WordList() ([]string, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
