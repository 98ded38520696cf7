package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// defaultInputPath is where fetch writes and run reads when no file is given.
func defaultInputPath(day int) string {
	return filepath.Join("inputs", fmt.Sprintf("day%d.txt", day))
}

// answer pairs one part number with its printable result.
type answer struct {
	part int
	text string
}

// runSolve handles `advent run`.
func runSolve(_ *cobra.Command, _ []string) {
	path := runInput
	if path == "" {
		path = defaultInputPath(runDay)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("reading puzzle input")
	}

	answers, err := solveDay(string(data), runDay, runPart)
	if err != nil {
		log.Fatal().Err(err).Int("day", runDay).Msg("solving")
	}
	for _, a := range answers {
		fmt.Println(a.text)
	}
}

// solveDay runs one registered part, or every part of the day when part is 0,
// returning the answers in part order.
func solveDay(input string, day, part int) ([]answer, error) {
	parts := partsOf(day)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no solver registered for day %d", day)
	}
	if part != 0 {
		if _, ok := lookup(day, part); !ok {
			return nil, fmt.Errorf("no solver registered for day %d part %d", day, part)
		}
		parts = []int{part}
	}

	answers := make([]answer, 0, len(parts))
	for _, p := range parts {
		fn, _ := lookup(day, p)
		start := time.Now()
		text, err := fn(input)
		if err != nil {
			return nil, fmt.Errorf("day %d part %d: %w", day, p, err)
		}
		log.Info().Int("day", day).Int("part", p).Dur("took", time.Since(start)).Msg("solved")
		answers = append(answers, answer{part: p, text: text})
	}

	return answers, nil
}
