package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	logLevel string

	runDay   int
	runPart  int
	runInput string

	manifestPath string

	fetchDay  int
	fetchYear int
	fetchOut  string

	rootCmd = &cobra.Command{
		Use:   "advent",
		Short: "Solve, verify, and fetch Advent of Code puzzles",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				log.Warn().Str("log-level", logLevel).Msg("unknown log level, keeping info")
				lvl = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(lvl)
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one day's solvers against its puzzle input and print the answers",
		Run:   runSolve, // Defined in cmd_run.go
	}

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Re-run every manifest entry and compare against its expected answer",
		Run:   runVerify, // Defined in cmd_verify.go
	}

	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Download a day's puzzle input from adventofcode.com",
		Run:   runFetch, // Defined in cmd_fetch.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log verbosity: trace, debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runDay, "day", 0, "Puzzle day to run")
	runCmd.Flags().IntVar(&runPart, "part", 0, "Run a single part instead of every registered part")
	runCmd.Flags().StringVar(&runInput, "input", "", "Input file (default inputs/dayN.txt)")
	_ = runCmd.MarkFlagRequired("day")

	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&manifestPath, "manifest", "verify.yaml", "YAML manifest of expected answers")

	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().IntVar(&fetchDay, "day", 0, "Puzzle day to fetch")
	fetchCmd.Flags().IntVar(&fetchYear, "year", 2024, "Event year")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "Destination file (default inputs/dayN.txt)")
	_ = fetchCmd.MarkFlagRequired("day")
}
