package daily

import (
	"testing"
	"time"
)

func TestDateKeyUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc) // 2024-03-01 19:00 UTC
	if got := DateKey(d); got != "2024-03-01" {
		t.Errorf("DateKey = %q, want 2024-03-01", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 200)
	b := WordIndex(d.Add(6*time.Hour), "salt", 200)
	if a != b {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 200 {
		t.Errorf("index %d out of range", a)
	}
}

func TestWordIndexVariesBySalt(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	distinct := map[int]bool{}
	for _, salt := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		distinct[WordIndex(d, salt, 1000)] = true
	}
	if len(distinct) < 2 {
		t.Error("expected different salts to produce different indexes")
	}
}

func TestWordIndexEmpty(t *testing.T) {
	if got := WordIndex(time.Now(), "x", 0); got != 0 {
		t.Errorf("WordIndex(n=0) = %d, want 0", got)
	}
}

func TestSourceMatchesWordIndex(t *testing.T) {
	d := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	s := Source{Date: d, Salt: "pepper"}
	if got, want := s.Intn(50), WordIndex(d, "pepper", 50); got != want {
		t.Errorf("Intn = %d, want %d", got, want)
	}
}
