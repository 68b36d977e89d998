// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gafferdan11/paddleleague/cliparse"
	"github.com/gafferdan11/paddleleague/db"
	"github.com/gafferdan11/paddleleague/league"
)

// GetTestConfig returns a configuration pointing at a fresh SQLite file
// inside the test's temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "league.db"),
		LogLevel:     "info",
	}
}

// SetupTestStore opens the store described by cfg and closes it when the
// test ends
func SetupTestStore(t *testing.T, cfg cliparse.Config) db.Store {
	t.Helper()

	store, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// SetupTestLeague returns a league with default state backed by a fresh
// SQLite store
func SetupTestLeague(t *testing.T) (*league.League, db.Store) {
	t.Helper()

	store := SetupTestStore(t, GetTestConfig(t))
	l, err := league.New(context.Background(), store)
	if err != nil {
		t.Fatalf("Failed to load test league: %v", err)
	}

	return l, store
}

// RecordTestResults records match index -> winner id pairs
func RecordTestResults(t *testing.T, l *league.League, results map[int]int) {
	t.Helper()

	for match, winner := range results {
		if _, err := l.RecordResult(context.Background(), match, winner); err != nil {
			t.Fatalf("Failed to record result %d -> %d: %v", match, winner, err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a url-encoded form POST, as the scoreboard page sends
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
