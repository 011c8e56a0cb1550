// cmd/root.go
//
// Root cobra command for the terminal game.
// Responsibilities:
//   - Declare flags and layer them over defaults, the YAML file and the environment.
//   - Configure the global zerolog logger (file or discard; stdout belongs to the UI).
//   - Load the word pool and build the session before the terminal is acquired,
//     so startup failures are reported on a normal terminal.
//   - Pick the index source: daily, seeded math/rand, or crypto/rand.

package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/tui/internal/config"
	"github.com/robalobadob/wordle/apps/tui/internal/daily"
	"github.com/robalobadob/wordle/apps/tui/internal/game"
	"github.com/robalobadob/wordle/apps/tui/internal/sound"
	"github.com/robalobadob/wordle/apps/tui/internal/tui"
	"github.com/robalobadob/wordle/apps/tui/internal/words"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the hidden word in your terminal",
		Long: `wordle is a terminal word-guessing game. Type a word, press enter,
and each letter is coloured: green in the right spot, yellow somewhere
else in the word, red not in the word at all.

Play with the built-in word list
	wordle

Use your own list and a seeded secret
	wordle --words ./words.txt --seed 42

Everybody gets the same word today
	wordle --daily
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("WORDLE_CONFIG")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", "", "YAML config file (default $WORDLE_CONFIG)")
	fs.StringVarP(&flags.WordsFile, "words", "w", flags.WordsFile, "Newline-delimited word list (default: built-in list)")
	fs.IntVar(&flags.Rows, "rows", flags.Rows, "Number of attempts")
	fs.IntVar(&flags.Cols, "cols", flags.Cols, "Letters per word")
	fs.StringVar(&flags.Scoring, "scoring", flags.Scoring, `Letter scoring:
naive: a letter found anywhere in the word is yellow, even if repeated
strict: repeated letters are only yellow while unmatched copies remain`)
	fs.Int64Var(&flags.Seed, "seed", flags.Seed, "Seed for secret selection (0 = random)")
	fs.BoolVarP(&flags.Daily, "daily", "d", flags.Daily, "Pick the word of the day instead of a random word")
	fs.StringVar(&flags.DailySalt, "daily-salt", flags.DailySalt, "Salt for the word of the day")
	fs.BoolVar(&flags.Reveal, "reveal", flags.Reveal, "Show the secret word in the header")
	fs.BoolVar(&flags.Sound, "sound", flags.Sound, "Play a tone when a game ends")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&flags.LogFile, "log-file", flags.LogFile, "Append logs to this file (default: discard)")
	return cmd
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f config.Config) {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("words", func() { cfg.WordsFile = f.WordsFile })
	set("rows", func() { cfg.Rows = f.Rows })
	set("cols", func() { cfg.Cols = f.Cols })
	set("scoring", func() { cfg.Scoring = f.Scoring })
	set("seed", func() { cfg.Seed = f.Seed })
	set("daily", func() { cfg.Daily = f.Daily })
	set("daily-salt", func() { cfg.DailySalt = f.DailySalt })
	set("reveal", func() { cfg.Reveal = f.Reveal })
	set("sound", func() { cfg.Sound = f.Sound })
	set("log-level", func() { cfg.LogLevel = f.LogLevel })
	set("log-file", func() { cfg.LogFile = f.LogFile })
}

// run loads the word pool, builds the session and hands it to the terminal loop.
// Everything that can fail at startup happens before the terminal is acquired.
func run(cfg config.Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	pool, err := words.Load(cfg.WordsFile, cfg.Cols)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	scorer, _ := game.ScorerByName(cfg.Scoring)
	sess, err := game.NewSession(pool, indexSource(cfg),
		game.WithRows(cfg.Rows),
		game.WithCols(cfg.Cols),
		game.WithScorer(scorer),
	)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	player := sound.New(cfg.Sound)
	defer player.Close()

	log.Info().
		Str("session", sess.ID()).
		Int("words", pool.Len()).
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Str("scoring", cfg.Scoring).
		Bool("daily", cfg.Daily).
		Msg("starting wordle")

	return tui.WithTerminal(tui.Open, func(t *tui.Terminal) error {
		app := &tui.App{
			Screen:  t.Screen(),
			Session: sess,
			Options: tui.DrawOptions{Reveal: cfg.Reveal},
			Notify:  player,
		}
		return app.Run()
	})
}

// indexSource picks how secrets are drawn: daily, seeded, or crypto/rand.
func indexSource(cfg config.Config) words.Source {
	switch {
	case cfg.Daily:
		return daily.Source{Salt: cfg.DailySalt}
	case cfg.Seed != 0:
		return rand.New(rand.NewSource(cfg.Seed))
	default:
		return words.CryptoSource{}
	}
}

// setupLogging points the global logger at LOG_FILE, or discards output:
// stdout and stderr belong to the terminal UI while it runs.
func setupLogging(cfg config.Config) (func(), error) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}
