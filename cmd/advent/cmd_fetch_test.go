package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFetchInput_Success downloads a body through the session-cookie flow.
func TestFetchInput_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024/day/2/input", r.URL.Path)
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", cookie.Value)
		_, _ = w.Write([]byte("7 6 4 2 1\n"))
	}))
	defer srv.Close()

	body, err := fetchInput(srv.Client(), srv.URL, "s3cr3t", 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "7 6 4 2 1\n", string(body))
}

// TestFetchInput_TrimsSession strips the trailing newline a pasted cookie
// usually carries.
func TestFetchInput_TrimsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", cookie.Value)
	}))
	defer srv.Close()

	_, err := fetchInput(srv.Client(), srv.URL, "s3cr3t\n", 2024, 1)
	require.NoError(t, err)
}

// TestFetchInput_BadStatus surfaces non-200 responses as errors; an expired
// session cookie answers 400 with a login page.
func TestFetchInput_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Please log in", http.StatusBadRequest)
	}))
	defer srv.Close()

	body, err := fetchInput(srv.Client(), srv.URL, "stale", 2024, 2)
	assert.Nil(t, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

// TestSaveInput creates the inputs directory on first use and writes the body.
func TestSaveInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs", "day2.txt")
	require.NoError(t, saveInput(path, []byte("7 6 4 2 1\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7 6 4 2 1\n", string(data))
}
