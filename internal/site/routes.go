// Package site serves the public, cached read API of the podcast.
package site

import (
	"podcastsite/internal/mailer"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Episodes store.EpisodeStore
	Topics   store.TopicStore
	Cache    pagecache.Cache
	// Mailer sends resources links; nil turns the endpoint off.
	Mailer mailer.Sender
}

type handlers struct {
	Deps
}

// Routes wires the public pages. Their paths double as page cache keys.
func Routes(app fiber.Router, d Deps) {
	h := &handlers{Deps: d}

	app.Get("/", h.home)
	app.Get("/episodes", h.list)
	app.Get("/episodes/:slug", h.redirectEpisode)
	app.Get("/:lang/episodes/:slug", h.episode)
	app.Post("/:lang/episodes/:slug/resources", h.emailResources)
}
