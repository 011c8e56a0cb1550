// internal/config/config.go
//
// Runtime configuration for the terminal client.
//
// Precedence (lowest to highest):
//   1. Default()
//   2. YAML file given by --config / WORDLE_CONFIG
//   3. Environment variables (a `.env` file is loaded by main via godotenv)
//   4. Command line flags, applied by the cmd package
//
// Environment variables:
//   WORDLE_WORDS_FILE=/path/to/words.txt   (empty → embedded list)
//   WORDLE_ROWS=6  WORDLE_COLS=5
//   WORDLE_SCORING=naive|strict
//   WORDLE_SEED=0                          (0 → crypto/rand)
//   WORDLE_DAILY=false  WORDLE_DAILY_SALT=...
//   WORDLE_REVEAL=false WORDLE_SOUND=false
//   LOG_LEVEL=info      LOG_FILE=/path/to/wordle.log

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/robalobadob/wordle/apps/tui/internal/game"
)

// Config holds every tunable of the client.
type Config struct {
	WordsFile string `yaml:"words_file" env:"WORDLE_WORDS_FILE"`
	Rows      int    `yaml:"rows" env:"WORDLE_ROWS"`
	Cols      int    `yaml:"cols" env:"WORDLE_COLS"`
	Scoring   string `yaml:"scoring" env:"WORDLE_SCORING"`
	Seed      int64  `yaml:"seed" env:"WORDLE_SEED"`
	Daily     bool   `yaml:"daily" env:"WORDLE_DAILY"`
	DailySalt string `yaml:"daily_salt" env:"WORDLE_DAILY_SALT"`
	Reveal    bool   `yaml:"reveal" env:"WORDLE_REVEAL"`
	Sound     bool   `yaml:"sound" env:"WORDLE_SOUND"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile   string `yaml:"log_file" env:"LOG_FILE"`
}

// Default returns the built-in configuration: a 6×5 board, naive scoring,
// embedded word list.
func Default() Config {
	return Config{
		Rows:      6,
		Cols:      5,
		Scoring:   "naive",
		DailySalt: "wordle",
		LogLevel:  "info",
	}
}

// Load layers the YAML file at path (if any) and the environment over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("config: rows must be at least 1, got %d", c.Rows)
	}
	if c.Cols < 1 {
		return fmt.Errorf("config: cols must be at least 1, got %d", c.Cols)
	}
	if _, ok := game.ScorerByName(c.Scoring); !ok {
		return fmt.Errorf("config: unknown scoring %q (want naive or strict)", c.Scoring)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
