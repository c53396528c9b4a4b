// Package content turns files of the Markdown content repository into
// validated, rendered episode content.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// ErrNotAFile is returned when a path resolves to a directory or to anything
// other than a single regular file.
var ErrNotAFile = errors.New("path is not a file")

// Fetcher reads one file of a repository at a revision.
type Fetcher interface {
	Fetch(ctx context.Context, owner, repo, path, ref string) (string, error)
}

// GitHubFetcher reads files through the GitHub contents API.
type GitHubFetcher struct {
	client *github.Client
}

// NewGitHubFetcher builds a fetcher authenticated with a personal access
// token. An empty token falls back to anonymous access.
func NewGitHubFetcher(ctx context.Context, token string) *GitHubFetcher {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	return NewGitHubFetcherWithClient(github.NewClient(httpClient))
}

func NewGitHubFetcherWithClient(client *github.Client) *GitHubFetcher {
	return &GitHubFetcher{client: client}
}

func (f *GitHubFetcher) Fetch(ctx context.Context, owner, repo, path, ref string) (string, error) {
	file, dir, _, err := f.client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", fmt.Errorf("get contents of %s at %s: %w", path, ref, err)
	}

	if dir != nil || file == nil || file.GetType() != "file" {
		return "", fmt.Errorf("%s: %w", path, ErrNotAFile)
	}

	text, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	return text, nil
}
