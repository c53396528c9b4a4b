package events

import (
	"context"
	"time"

	"podcastsite/internal/models"

	log "github.com/go-pkgz/lgr"
)

const (
	ActorAdmin  = "admin"
	ActorSystem = "system"
)

const (
	TargetAdmin   = "admin"
	TargetEpisode = "episode"
	TargetTopic   = "topic"
	TargetFile    = "content_file"
	TargetPush    = "push"
)

// Emit queues evt. When the buffer is full the event is written directly.
func (e *Emitter) Emit(evt models.Event) {
	if e == nil {
		return
	}

	evt.TimeStamp = time.Now().In(e.cfg.Location)

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		log.Printf("[WARN] event %s dropped, emitter is closed", evt.Action)
		return
	}

	select {
	case e.buf <- evt:
	default:
		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)
		defer cancel()

		_ = e.insertOne(ctx, evt)
	}
}
