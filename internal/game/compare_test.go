package game

import (
	"reflect"
	"strings"
	"testing"
)

const (
	C = Correct
	P = Present
	A = Absent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		secret, guess string
		want          []CellStatus
	}{
		// A shares index 2 in both words, so it is Correct.
		{"trace vs crane", "CRANE", "TRACE", []CellStatus{A, C, C, P, C}},
		{"exact", "CRANE", "CRANE", []CellStatus{C, C, C, C, C}},
		{"case insensitive", "crane", "CrAnE", []CellStatus{C, C, C, C, C}},
		{"nothing shared", "CRANE", "BUMPY", []CellStatus{A, A, A, A, A}},
		{"anagram", "CRANE", "NACRE", []CellStatus{P, P, P, P, C}},
		// No duplicate capping: both E's light up although the secret has one.
		{"duplicate guess letters", "CRANE", "EERIE", []CellStatus{P, P, P, A, C}},
		{"duplicate not capped", "ABBEY", "KEEPS", []CellStatus{A, P, P, A, A}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.secret, tt.guess)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	pairs := [][2]string{{"CRANE", "trace"}, {"abbey", "KEEPS"}, {"SLATE", "slate"}}
	for _, p := range pairs {
		a := Evaluate(p[0], p[1])
		b := Evaluate(p[0], p[1])
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Evaluate(%q, %q) not deterministic: %v vs %v", p[0], p[1], a, b)
		}
		lower := Evaluate(strings.ToLower(p[0]), strings.ToLower(p[1]))
		upper := Evaluate(strings.ToUpper(p[0]), strings.ToUpper(p[1]))
		if !reflect.DeepEqual(lower, upper) {
			t.Errorf("case changed result for %v", p)
		}
	}
}

func TestEvaluateStrict(t *testing.T) {
	tests := []struct {
		name          string
		secret, guess string
		want          []CellStatus
	}{
		{"trace vs crane", "CRANE", "TRACE", []CellStatus{A, C, C, P, C}},
		// Only the exact E counts; the spare E's are demoted.
		{"duplicate capped", "CRANE", "EERIE", []CellStatus{A, A, P, A, C}},
		{"one spare copy", "ABBEY", "KEEPS", []CellStatus{A, P, A, A, A}},
		{"copies run out", "SPEED", "EERIE", []CellStatus{P, P, A, A, A}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateStrict(tt.secret, tt.guess)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EvaluateStrict(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}
}

func TestScorerByName(t *testing.T) {
	for _, name := range []string{"", "naive", "strict"} {
		if _, ok := ScorerByName(name); !ok {
			t.Errorf("ScorerByName(%q) not found", name)
		}
	}
	if _, ok := ScorerByName("fuzzy"); ok {
		t.Error("ScorerByName(fuzzy) ok = true")
	}
}
