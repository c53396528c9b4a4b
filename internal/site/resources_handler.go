package site

import (
	"encoding/json"
	"errors"
	"strings"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/mailer"
	"podcastsite/internal/models"
	"podcastsite/internal/store"
	"podcastsite/internal/utils"
	"podcastsite/internal/validate"

	log "github.com/go-pkgz/lgr"
	"github.com/gofiber/fiber/v3"
)

const MsgResourcesSent = "Resources link sent"

type ResourcesRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// emailResources mails the episode's resources link to a visitor.
// @Summary Email episode resources
// @Tags Site
// @Accept json
// @Produce json
// @Param lang path string true "Locale" Enums(en, fa)
// @Param slug path string true "Episode slug"
// @Param request body ResourcesRequest true "Recipient"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} errmsg._ResourcesInvalidRequest
// @Failure 404 {object} errmsg._EpisodeNotFound
// @Failure 502 {object} errmsg._ResourcesMailFailed
// @Router /{lang}/episodes/{slug}/resources [post]
func (h *handlers) emailResources(c fiber.Ctx) error {
	lang := c.Params("lang")
	if !Supported(lang) {
		return utils.StatusError(c, errmsg.UnsupportedLocale)
	}

	var req ResourcesRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.StatusError(c, errmsg.ResourcesInvalidRequest)
	}
	req.Email = strings.TrimSpace(req.Email)

	if errs := validate.Struct(req); errs != nil {
		return utils.ValidationError(c, errmsg.ResourcesInvalidRequest, errs)
	}

	ep, err := h.Episodes.FindBySlug(c, c.Params("slug"))
	if errors.Is(err, store.ErrEpisodeNotFound) || (err == nil && ep.Status == models.EpisodeStatusArchived) {
		return utils.StatusError(c, errmsg.EpisodeNotFound)
	}
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}
	if ep.ResourcesURL == "" {
		return utils.StatusError(c, errmsg.EpisodeNoResources)
	}

	if h.Mailer == nil {
		return utils.StatusError(c, errmsg.ResourcesMailUnavailable)
	}

	msg, err := mailer.ResourceMessage(lang, req.Email, ep.ResourcesURL)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if err := h.Mailer.Send(c, msg); err != nil {
		log.Printf("[WARN] resources email for episode %s failed: %v", ep.Slug, err)
		return utils.StatusError(c, errmsg.ResourcesMailFailed)
	}

	log.Printf("[INFO] sent resources of episode %s", ep.Slug)
	return utils.Message(c, fiber.StatusOK, MsgResourcesSent)
}
