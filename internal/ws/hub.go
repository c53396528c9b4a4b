package ws

import (
	"context"
	"sync"

	"podcastsite/internal/models"

	log "github.com/go-pkgz/lgr"
)

const subscriberBuffer = 16

// Hub fans sync reports out to every subscribed stream. A subscriber that
// falls behind loses reports instead of blocking the sync.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan models.SyncReport
	nextID int
}

func NewHub() *Hub {
	return &Hub{subs: map[int]chan models.SyncReport{}}
}

// Subscribe registers a new listener. The returned func removes it.
func (h *Hub) Subscribe() (<-chan models.SyncReport, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.SyncReport, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
		})
	}
}

// Subscribers returns the number of active listeners.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) Publish(report models.SyncReport) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- report:
		default:
			log.Printf("[WARN] sync stream %d is full, dropping report for delivery %s", id, report.DeliveryID)
		}
	}
}

// Stream forwards published reports to w until ctx is done or the client
// disconnects.
func (h *Hub) Stream(ctx context.Context, w *ReportWriter) error {
	reports, unsubscribe := h.Subscribe()
	defer unsubscribe()

	w.WriteStatus("info", "sync stream started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report := <-reports:
			if err := w.WriteReport(report); err != nil {
				return err
			}
		}
	}
}
