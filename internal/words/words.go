// internal/words/words.go
//
// Word pool management for the game engine.
//
// Responsibilities:
//   - Load candidate secret words from a newline-delimited file, or fall back to
//     the embedded default list in the assets package.
//   - Normalize entries (trim, upper-case) and keep only words of the configured length
//     made entirely of typeable letters.
//   - Supply a uniform random Select driven by an injected index Source.
//
// Constraints:
//   • A pool is never empty: NewPool and Load return ErrEmptyPool instead.
//   • A pool is immutable after construction and safe to share.
//   • Unreadable word files are reported as ErrWordSourceUnreadable.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/tui/assets"
)

var (
	// ErrEmptyPool is returned when no usable candidate word is available.
	ErrEmptyPool = errors.New("words: pool is empty")

	// ErrWordSourceUnreadable wraps I/O failures while reading a word source.
	ErrWordSourceUnreadable = errors.New("words: word source unreadable")
)

// Source yields indexes in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// randReader is swapped in tests to simulate an entropy failure.
var randReader io.Reader = rand.Reader

// CryptoSource draws indexes from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniformly distributed index in [0, n).
// If crypto/rand fails it logs a warning and returns 0.
func (CryptoSource) Intn(n int) int {
	nBig, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		log.Warn().Err(err).Int("n", n).Msg("crypto/rand failed, falling back to index 0")
		return 0
	}
	return int(nBig.Int64())
}

// Typeable reports whether r can be entered as a guess letter:
// printable and not whitespace. The game input path uses the same rule,
// so every pool word can be typed in full.
func Typeable(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func typeable(w string) bool {
	for _, r := range w {
		if !Typeable(r) {
			return false
		}
	}
	return true
}

// Pool holds the candidate secret words, upper-cased.
type Pool struct {
	words  []string
	set    map[string]struct{}
	length int
}

// NewPool normalizes candidates and builds a pool.
// Blank entries, "#" comments and entries with an untypeable rune are dropped.
// length is the required rune count per word; 0 keeps every other entry.
func NewPool(candidates []string, length int) (*Pool, error) {
	upper := cases.Upper(language.Und)
	p := &Pool{set: make(map[string]struct{}, len(candidates)), length: length}
	for _, c := range candidates {
		w := upper.String(strings.TrimSpace(c))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if length > 0 && utf8.RuneCountInString(w) != length {
			continue
		}
		if !typeable(w) {
			log.Debug().Str("word", w).Msg("skipping word with untypeable characters")
			continue
		}
		if _, dup := p.set[w]; dup {
			continue
		}
		p.set[w] = struct{}{}
		p.words = append(p.words, w)
	}
	if len(p.words) == 0 {
		return nil, ErrEmptyPool
	}
	return p, nil
}

// Load reads a pool from path, or from the embedded list when path is empty.
func Load(path string, length int) (*Pool, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.WordList()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordSourceUnreadable, err)
	}

	p, err := NewPool(list, length)
	if err != nil {
		return nil, err
	}
	src := path
	if src == "" {
		src = "embedded"
	}
	log.Debug().
		Str("source", src).
		Int("words", p.Len()).
		Int("skipped", len(list)-p.Len()).
		Msg("word pool loaded")
	return p, nil
}

// readWordFile loads one entry per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Select picks one word uniformly at random using src.
func (p *Pool) Select(src Source) (string, error) {
	if p == nil || len(p.words) == 0 {
		return "", ErrEmptyPool
	}
	return Select(p.words, src)
}

// Select picks one of candidates using an index drawn from src.
func Select(candidates []string, src Source) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyPool
	}
	i := src.Intn(len(candidates))
	if i < 0 || i >= len(candidates) {
		return "", fmt.Errorf("words: source index %d out of range [0, %d)", i, len(candidates))
	}
	return candidates[i], nil
}

// Len reports the number of candidate words.
func (p *Pool) Len() int { return len(p.words) }

// WordLength reports the configured word length (0 = unconstrained).
func (p *Pool) WordLength() int { return p.length }

// Words returns a copy of the candidates.
func (p *Pool) Words() []string {
	return append([]string(nil), p.words...)
}

// Contains reports whether w (any case) is a candidate.
func (p *Pool) Contains(w string) bool {
	_, ok := p.set[cases.Upper(language.Und).String(strings.TrimSpace(w))]
	return ok
}
