package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// aocBaseURL is the production endpoint; tests point fetchInput at a local server.
const aocBaseURL = "https://adventofcode.com"

// fetchInput downloads one day's puzzle input, authenticating with the
// session cookie. The caller owns persistence of the returned body.
func fetchInput(client *http.Client, baseURL, session string, year, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", baseURL, year, day)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(session)})

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, res.Status)
	}

	return io.ReadAll(res.Body)
}

// runFetch handles `advent fetch`.
func runFetch(_ *cobra.Command, _ []string) {
	session := os.Getenv("AOC_SESSION")
	if session == "" {
		log.Fatal().Msg("AOC_SESSION is not set; export it or put it in a .env file")
	}

	out := fetchOut
	if out == "" {
		out = defaultInputPath(fetchDay)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	body, err := fetchInput(client, aocBaseURL, session, fetchYear, fetchDay)
	if err != nil {
		log.Fatal().Err(err).Int("day", fetchDay).Msg("downloading input")
	}

	if err := saveInput(out, body); err != nil {
		log.Fatal().Err(err).Str("file", out).Msg("writing input file")
	}
	log.Info().Int("day", fetchDay).Int("year", fetchYear).Str("file", out).Int("bytes", len(body)).Msg("input saved")
}

// saveInput persists a downloaded input, creating the directory on first use.
func saveInput(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, body, 0o644)
}
