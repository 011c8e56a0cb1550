package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "rows: 8\ncols: 4\nscoring: strict\nreveal: true\n")
	t.Setenv("WORDLE_ROWS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rows != 3 {
		t.Errorf("rows = %d, want env value 3", cfg.Rows)
	}
	if cfg.Cols != 4 || cfg.Scoring != "strict" || !cfg.Reveal {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", cfg.Level())
	}
	if cfg.DailySalt != "wordle" {
		t.Errorf("untouched default lost: salt = %q", cfg.DailySalt)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, "rows: 6\ncolour: blue\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("unknown key err = %v", err)
	}

	t.Setenv("WORDLE_ROWS", "many")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Errorf("bad env err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"strict scoring", func(c *Config) { c.Scoring = "strict" }, false},
		{"zero rows", func(c *Config) { c.Rows = 0 }, true},
		{"negative cols", func(c *Config) { c.Cols = -1 }, true},
		{"unknown scoring", func(c *Config) { c.Scoring = "fuzzy" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = ""
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", cfg.Level())
	}
}
