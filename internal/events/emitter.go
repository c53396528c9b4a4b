// Package events records an audit trail of sync runs and admin actions in
// the events collection. Events are buffered and written in batches.
package events

import (
	"context"
	"sync"
	"time"

	"podcastsite/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration

	// Location is the zone event timestamps are recorded in.
	Location *time.Location
}

var (
	DefaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	FastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

type Emitter struct {
	buf chan models.Event
	cfg Config

	wg        sync.WaitGroup
	onceClose sync.Once

	// mu guards closed and sends on buf against Close.
	mu     sync.RWMutex
	closed bool

	insertOne  func(context.Context, models.Event) error
	insertMany func(context.Context, []models.Event) error
}

func NewEmitter(coll *mongo.Collection, loc *time.Location) *Emitter {
	cfg := DefaultConfig
	cfg.Location = loc
	return NewEmitterWithConfig(coll, cfg)
}

func NewEmitterWithConfig(coll *mongo.Collection, cfg Config) *Emitter {
	insertOne := func(ctx context.Context, evt models.Event) error {
		_, err := coll.InsertOne(ctx, evt)
		return err
	}

	insertMany := func(ctx context.Context, evts []models.Event) error {
		docs := make([]interface{}, len(evts))
		for i, evt := range evts {
			docs[i] = evt
		}

		_, err := coll.InsertMany(ctx, docs)
		return err
	}

	return newEmitter(cfg, insertOne, insertMany)
}

func newEmitter(
	cfg Config,
	insertOne func(context.Context, models.Event) error,
	insertMany func(context.Context, []models.Event) error,
) *Emitter {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	e := &Emitter{
		buf:        make(chan models.Event, cfg.Buffer),
		cfg:        cfg,
		insertOne:  insertOne,
		insertMany: insertMany,
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

// Close flushes buffered events and stops the worker. Events emitted after
// Close are dropped.
func (e *Emitter) Close() {
	if e == nil {
		return
	}

	e.onceClose.Do(func() {
		e.mu.Lock()
		e.closed = true
		close(e.buf)
		e.mu.Unlock()

		e.wg.Wait()
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.Event, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		_ = e.insertMany(ctx, batch)

		cancel()

		batch = make([]models.Event, 0, e.cfg.BatchSize)
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case evt, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, evt)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}
