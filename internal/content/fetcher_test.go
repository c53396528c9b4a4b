package content

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *GitHubFetcher {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewGitHubFetcherWithClient(client)
}

func TestGitHubFetcherDecodesFile(t *testing.T) {
	const text = "---\ntitleEn: Hello\n---\nIntro EN"

	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/content/contents/episodes/ep1.md", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("ref"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"name":     "ep1.md",
			"path":     "episodes/ep1.md",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(text)),
		})
	})

	got, err := f.Fetch(context.Background(), "acme", "content", "episodes/ep1.md", "abc123")
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestGitHubFetcherRejectsDirectory(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"type": "file", "name": "ep1.md", "path": "episodes/ep1.md"},
		})
	})

	_, err := f.Fetch(context.Background(), "acme", "content", "episodes", "abc123")
	require.ErrorIs(t, err, ErrNotAFile)
}

func TestGitHubFetcherRejectsSymlink(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type": "symlink",
			"name": "ep1.md",
			"path": "episodes/ep1.md",
		})
	})

	_, err := f.Fetch(context.Background(), "acme", "content", "episodes/ep1.md", "abc123")
	require.ErrorIs(t, err, ErrNotAFile)
}

func TestGitHubFetcherReportsMissingFile(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := f.Fetch(context.Background(), "acme", "content", "episodes/missing.md", "abc123")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotAFile)
}
