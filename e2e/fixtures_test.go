//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// FakeGitHub serves /search/repositories with one repository per query,
// named after the query's first word.
type FakeGitHub struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
	delays  map[string]time.Duration
	fail    map[string]int
}

// NewFakeGitHub starts the fake API; it is closed when the test ends
func NewFakeGitHub(t *testing.T) *FakeGitHub {
	t.Helper()
	f := &FakeGitHub{
		delays: map[string]time.Duration{},
		fail:   map[string]int{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Delay holds responses for term by d
func (f *FakeGitHub) Delay(term string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[term] = d
}

// Fail answers term with the given HTTP status
func (f *FakeGitHub) Fail(term string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[term] = status
}

// Queries returns the search terms received so far, without qualifiers
func (f *FakeGitHub) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// URL is the search endpoint to put in the config
func (f *FakeGitHub) URL() string {
	return f.Server.URL + "/search/repositories"
}

func (f *FakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	term := strings.TrimSpace(strings.Split(q, " language:")[0])

	f.mu.Lock()
	f.queries = append(f.queries, term)
	delay := f.delays[term]
	status := f.fail[term]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if status != 0 {
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, `{"message":"fake failure for %q"}`, term)
		return
	}

	name := "empty"
	if fields := strings.Fields(term); len(fields) > 0 {
		name = fields[0]
	}
	body := map[string]any{
		"total_count":        1,
		"incomplete_results": false,
		"items": []map[string]any{{
			"id":                1,
			"name":              name + "-lib",
			"html_url":          "https://github.com/acme/" + name + "-lib",
			"owner":             map[string]any{"login": "acme"},
			"stargazers_count":  4321,
			"forks":             12,
			"watchers_count":    4321,
			"open_issues_count": 3,
		}},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// WriteConfig writes a config pointing at api into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(api *FakeGitHub) (string, error) {
	if tf.workspace == "" {
		tf.workspace = tf.t.TempDir()
	}
	path := filepath.Join(tf.workspace, "config.toml")
	content := fmt.Sprintf(`version = 1

[api]
base_url = %q
user_agent = "ghsearch-e2e"
timeout_ms = 5000
requests_per_minute = 0

[search]
language = "go"
sort = "stars"
debounce_ms = 150
search_on_blur = true

[ui]
show_owner = true
report_focus = false
alt_screen = true

[logging]
level = "debug"
format = "json"
file = %q
`, api.URL(), filepath.Join(tf.workspace, "ghsearch.log"))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
