// Command advent solves, verifies, and fetches Advent of Code puzzles.
//
// Usage:
//
//	advent run --day 2 [--part 1] [--input FILE]
//	advent verify [--manifest FILE]
//	advent fetch --day 2 [--year 2024] [--out FILE]
//
// Answers go to stdout, one per line; logs go to stderr.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging; --log-level may lower or raise this before a command runs.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env; fetch reads AOC_SESSION from it.
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
