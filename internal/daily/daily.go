// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// The index for a date is HMAC-SHA256(salt, YYYY-MM-DD) modulo the pool size,
// so every player with the same word list and salt gets the same secret.
//
// Source adapts this to the words.Source interface, letting a session use it
// in place of a random number generator.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source yields the daily index for a fixed date.
// A zero Date means "today" at the time Intn is called.
type Source struct {
	Date time.Time
	Salt string
}

// Intn implements words.Source.
func (s Source) Intn(n int) int {
	d := s.Date
	if d.IsZero() {
		d = time.Now()
	}
	return WordIndex(d, s.Salt, n)
}
