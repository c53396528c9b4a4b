package content

import (
	"context"
	"fmt"
	"sync"
)

// MemoryFetcher serves files from a map keyed by path, ignoring owner, repo
// and revision. Used by tests and local tooling.
type MemoryFetcher struct {
	mu    sync.Mutex
	files map[string]string
	calls []string
}

func NewMemoryFetcher(files map[string]string) *MemoryFetcher {
	if files == nil {
		files = map[string]string{}
	}
	return &MemoryFetcher{files: files}
}

func (f *MemoryFetcher) Fetch(_ context.Context, _, _, path, ref string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, path+"@"+ref)

	text, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("%s at %s: %w", path, ref, ErrNotAFile)
	}
	return text, nil
}

// Calls lists the fetched paths as path@ref, in call order.
func (f *MemoryFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
