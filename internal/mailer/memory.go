package mailer

import (
	"context"
	"sync"
)

// Memory records messages instead of sending them. Setting Err makes every
// Send fail with it.
type Memory struct {
	mu   sync.Mutex
	sent []Message

	Err error
}

func (m *Memory) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *Memory) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}
