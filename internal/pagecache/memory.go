package pagecache

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-process Cache. Setting Err makes every call fail with it.
type Memory struct {
	mu          sync.Mutex
	pages       map[string][]byte
	invalidated []string

	Err error
}

func NewMemory() *Memory {
	return &Memory{pages: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, path string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, false, m.Err
	}
	page, ok := m.pages[path]
	return page, ok, nil
}

func (m *Memory) Set(_ context.Context, path string, page []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	// path may alias a request buffer that is reused after the handler returns
	m.pages[strings.Clone(path)] = append([]byte(nil), page...)
	return nil
}

func (m *Memory) Invalidate(_ context.Context, paths ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidated = append(m.invalidated, paths...)
	if m.Err != nil {
		return m.Err
	}
	for _, p := range paths {
		delete(m.pages, p)
	}
	return nil
}

// Invalidated lists every path passed to Invalidate, in call order.
func (m *Memory) Invalidated() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.invalidated...)
}
