package site

import (
	"encoding/json"
	"errors"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"
	"podcastsite/internal/utils"

	log "github.com/go-pkgz/lgr"
	"github.com/gofiber/fiber/v3"
	fiberutils "github.com/gofiber/utils/v2"
)

const cacheHeader = "X-Cache"

// cached serves the page stored under path, or renders it with build and
// stores the result. path is the canonical page path, never the raw request
// path, so sync invalidation reaches every spelling routing accepts. A failing
// cache only costs a rebuild.
func (h *handlers) cached(c fiber.Ctx, path string, build func() (any, *errmsg.StatusError)) error {
	if h.Cache != nil {
		page, ok, err := h.Cache.Get(c, path)
		if err != nil {
			log.Printf("[WARN] page cache read for %s failed: %v", path, err)
		}
		if ok {
			c.Set(cacheHeader, "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.Send(page)
		}
	}

	view, serr := build()
	if serr != nil {
		return utils.StatusError(c, *serr)
	}

	page, err := json.Marshal(view)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if h.Cache != nil {
		if err := h.Cache.Set(c, path, page); err != nil {
			log.Printf("[WARN] page cache write for %s failed: %v", path, err)
		}
	}

	c.Set(cacheHeader, "MISS")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(page)
}

func internalError(err error) *errmsg.StatusError {
	se := errmsg.InternalServerError(err)
	return &se
}

// home lists upcoming episodes and the most recent published ones.
// @Summary Home page
// @Tags Site
// @Produce json
// @Success 200 {object} HomePage
// @Failure 500 {object} errmsg._InternalServerError
// @Router / [get]
func (h *handlers) home(c fiber.Ctx) error {
	return h.cached(c, pagecache.HomePath, func() (any, *errmsg.StatusError) {
		episodes, err := h.Episodes.List(c, "")
		if err != nil {
			return nil, internalError(err)
		}
		return buildHome(episodes), nil
	})
}

// @Summary Episode list
// @Tags Site
// @Produce json
// @Success 200 {object} ListPage
// @Failure 500 {object} errmsg._InternalServerError
// @Router /episodes [get]
func (h *handlers) list(c fiber.Ctx) error {
	return h.cached(c, pagecache.ListPath, func() (any, *errmsg.StatusError) {
		episodes, err := h.Episodes.List(c, "")
		if err != nil {
			return nil, internalError(err)
		}
		return buildList(episodes), nil
	})
}

// episode renders one episode in the requested locale.
// @Summary Episode detail
// @Tags Site
// @Produce json
// @Param lang path string true "Locale" Enums(en, fa)
// @Param slug path string true "Episode slug"
// @Success 200 {object} EpisodePage
// @Failure 404 {object} errmsg._EpisodeNotFound
// @Router /{lang}/episodes/{slug} [get]
func (h *handlers) episode(c fiber.Ctx) error {
	lang := fiberutils.CopyString(c.Params("lang"))
	if !Supported(lang) {
		return utils.StatusError(c, errmsg.UnsupportedLocale)
	}
	slug := fiberutils.CopyString(c.Params("slug"))

	return h.cached(c, pagecache.EpisodePath(lang, slug), func() (any, *errmsg.StatusError) {
		ep, err := h.Episodes.FindBySlug(c, slug)
		if errors.Is(err, store.ErrEpisodeNotFound) {
			return nil, &errmsg.EpisodeNotFound
		}
		if err != nil {
			return nil, internalError(err)
		}
		if ep.Status == models.EpisodeStatusArchived {
			return nil, &errmsg.EpisodeNotFound
		}

		var topic *models.Topic
		if ep.TopicID != nil && h.Topics != nil {
			topic, err = h.Topics.Get(c, *ep.TopicID)
			if err != nil && !errors.Is(err, store.ErrTopicNotFound) {
				return nil, internalError(err)
			}
		}

		return buildEpisode(lang, *ep, topic), nil
	})
}

// redirectEpisode sends locale-less episode links to the visitor's locale.
// @Summary Localized episode redirect
// @Tags Site
// @Param slug path string true "Episode slug"
// @Param Accept-Language header string false "Preferred languages"
// @Success 307
// @Router /episodes/{slug} [get]
func (h *handlers) redirectEpisode(c fiber.Ctx) error {
	lang := Negotiate(c.Get(fiber.HeaderAcceptLanguage))

	c.Vary(fiber.HeaderAcceptLanguage)
	return c.Redirect().Status(fiber.StatusTemporaryRedirect).To("/" + lang + "/episodes/" + c.Params("slug"))
}
