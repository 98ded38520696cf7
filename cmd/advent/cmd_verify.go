package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// manifest is the verify command's config file: expected answers to re-check
// after any solver change.
type manifest struct {
	Cases []manifestCase `yaml:"cases"`
}

// manifestCase pins one part's answer for one input file.
type manifestCase struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

// mismatch records one failed case: either the run errored or the answer
// differed from the manifest.
type mismatch struct {
	c   manifestCase
	got string
	err error
}

// loadManifest reads and validates the YAML manifest.
func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate rejects manifests with entries that cannot possibly run.
func (m *manifest) Validate() error {
	if len(m.Cases) == 0 {
		return fmt.Errorf("manifest has no cases")
	}
	for i, c := range m.Cases {
		if c.Day < 1 || c.Part < 1 || c.Input == "" || c.Want == "" {
			return fmt.Errorf("case %d: day, part, input, and want are all required", i+1)
		}
		if _, ok := lookup(c.Day, c.Part); !ok {
			return fmt.Errorf("case %d: no solver registered for day %d part %d", i+1, c.Day, c.Part)
		}
	}

	return nil
}

// verifyManifest runs every case and collects the failures.
func verifyManifest(m *manifest) []mismatch {
	var bad []mismatch
	for _, c := range m.Cases {
		data, err := os.ReadFile(c.Input)
		if err != nil {
			bad = append(bad, mismatch{c: c, err: err})
			continue
		}
		fn, _ := lookup(c.Day, c.Part)
		got, err := fn(string(data))
		if err != nil {
			bad = append(bad, mismatch{c: c, err: err})
			continue
		}
		if got != c.Want {
			bad = append(bad, mismatch{c: c, got: got})
		}
	}

	return bad
}

// runVerify handles `advent verify`.
func runVerify(_ *cobra.Command, _ []string) {
	m, err := loadManifest(manifestPath)
	if err != nil {
		log.Fatal().Err(err).Str("manifest", manifestPath).Msg("loading manifest")
	}

	bad := verifyManifest(m)
	for _, b := range bad {
		ev := log.Error().Int("day", b.c.Day).Int("part", b.c.Part).Str("input", b.c.Input)
		if b.err != nil {
			ev.Err(b.err).Msg("case failed")
			continue
		}
		ev.Str("want", b.c.Want).Str("got", b.got).Msg("answer mismatch")
	}
	if len(bad) > 0 {
		log.Fatal().Int("failed", len(bad)).Int("total", len(m.Cases)).Msg("verification failed")
	}
	log.Info().Int("total", len(m.Cases)).Msg("all answers verified")
}
