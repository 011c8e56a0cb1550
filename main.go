package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/tui/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		// The terminal is restored by now; report on stderr.
		stderr := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		stderr.Fatal().Err(err).Msg("wordle exited")
	}
}
