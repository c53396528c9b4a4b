// Package admin serves the authenticated API used to schedule episodes and
// topics and to watch content syncs as they happen.
package admin

import (
	"time"

	"podcastsite/internal/events"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"
	"podcastsite/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Admins   store.AdminStore
	Episodes store.EpisodeStore
	Topics   store.TopicStore
	Cache    pagecache.Invalidator
	Events   *events.Emitter
	Hub      *ws.Hub

	// Secret signs admin tokens.
	Secret []byte
	// Location is the site time zone for scheduledAt values without an offset.
	Location *time.Location
}

type handlers struct {
	Deps
}

// Routes wires the admin endpoints under /admin.
func Routes(app fiber.Router, d Deps) {
	h := &handlers{Deps: d}
	auth := AccountMiddleware(d.Secret)

	admin := app.Group("/admin")

	admin.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	admin.Post("/login", h.login)

	admin.Get("/episodes", auth, h.listEpisodes)
	admin.Post("/episodes", auth, h.createEpisode)

	admin.Get("/topics", auth, h.listTopics)
	admin.Post("/topics", auth, h.createTopic)

	admin.Get("/sync/stream", auth, h.syncStream)
}
