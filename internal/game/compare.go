// internal/game/compare.go
//
// Per-letter comparison of a guess against the secret. Both scorers are
// case-insensitive and return one status per guess rune.
//
//   - Evaluate:       positional match → Correct, contained anywhere → Present,
//                     else Absent. No duplicate-letter capping: a guess with two
//                     E's against a secret with one E marks both.
//   - EvaluateStrict: the two-pass frequency-capped scoring used by classic Wordle.

package game

import "unicode"

// Scorer maps (secret, guess) to per-letter statuses.
type Scorer func(secret, guess string) []CellStatus

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToUpper(r)
	}
	return rs
}

// Evaluate implements the simple positional/containment check.
func Evaluate(secret, guess string) []CellStatus {
	sec := foldRunes(secret)
	g := foldRunes(guess)

	in := make(map[rune]bool, len(sec))
	for _, r := range sec {
		in[r] = true
	}

	out := make([]CellStatus, len(g))
	for i, r := range g {
		switch {
		case i < len(sec) && sec[i] == r:
			out[i] = Correct
		case in[r]:
			out[i] = Present
		default:
			out[i] = Absent
		}
	}
	return out
}

// EvaluateStrict implements the standard two-pass scoring.
//
// Pass 1 marks exact matches and counts the remaining secret letters.
// Pass 2 marks a non-matching guess letter Present only while unused copies
// of it remain, otherwise Absent.
func EvaluateStrict(secret, guess string) []CellStatus {
	sec := foldRunes(secret)
	g := foldRunes(guess)
	out := make([]CellStatus, len(g))

	counts := make(map[rune]int, len(sec))
	for i, r := range sec {
		if i < len(g) && g[i] == r {
			out[i] = Correct
		} else {
			counts[r]++
		}
	}

	for i, r := range g {
		if out[i] == Correct {
			continue
		}
		if counts[r] > 0 {
			out[i] = Present
			counts[r]--
		} else {
			out[i] = Absent
		}
	}
	return out
}

// ScorerByName resolves a configured scoring mode ("naive" or "strict").
func ScorerByName(name string) (Scorer, bool) {
	switch name {
	case "", "naive":
		return Evaluate, true
	case "strict":
		return EvaluateStrict, true
	}
	return nil, false
}
