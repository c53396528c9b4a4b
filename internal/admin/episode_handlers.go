package admin

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"
	"podcastsite/internal/utils"
	"podcastsite/internal/validate"

	"github.com/gofiber/fiber/v3"
	log "github.com/go-pkgz/lgr"
)

// scheduleLayouts are accepted for scheduledAt, the last one being what an
// HTML datetime-local input submits.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CreateEpisodeRequest schedules a new episode. Titles and descriptions are
// overwritten by the first content sync.
type CreateEpisodeRequest struct {
	Slug          string `json:"slug" validate:"required,slug"`
	ScheduledAt   string `json:"scheduledAt" validate:"required"`
	ContentName   string `json:"contentName" validate:"required,mdfile"`
	TopicID       *int64 `json:"topicId"`
	ResourcesURL  string `json:"resourcesUrl" validate:"omitempty,url"`
	TitleEn       string `json:"titleEn" validate:"min=4"`
	TitleFa       string `json:"titleFa" validate:"min=4"`
	DescriptionEn string `json:"descriptionEn" validate:"max=1000"`
	DescriptionFa string `json:"descriptionFa" validate:"max=1000"`
}

// listEpisodes returns every episode, newest first.
// @Summary List episodes
// @Tags Admin Episodes
// @Security AdminAuth
// @Produce json
// @Success 200 {array} models.Episode
// @Failure 401 {object} errmsg._AdminNoToken
// @Failure 500 {object} errmsg._InternalServerError
// @Router /api/admin/episodes [get]
func (h *handlers) listEpisodes(c fiber.Ctx) error {
	episodes, err := h.Episodes.List(c, "")
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(episodes)
}

// createEpisode schedules an upcoming episode linked to a content file.
// @Summary Create episode
// @Tags Admin Episodes
// @Security AdminAuth
// @Accept json
// @Produce json
// @Param episode body CreateEpisodeRequest true "Episode to schedule"
// @Success 201 {object} models.Episode
// @Failure 400 {object} errmsg._EpisodeInvalidRequest
// @Failure 401 {object} errmsg._AdminNoToken
// @Failure 409 {object} errmsg._EpisodeSlugTaken
// @Router /api/admin/episodes [post]
func (h *handlers) createEpisode(c fiber.Ctx) error {
	var req CreateEpisodeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.StatusError(c, errmsg.EpisodeInvalidRequest)
	}

	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.ContentName = strings.TrimSpace(req.ContentName)
	req.ResourcesURL = strings.TrimSpace(req.ResourcesURL)
	req.TitleEn = strings.TrimSpace(req.TitleEn)
	req.TitleFa = strings.TrimSpace(req.TitleFa)

	errs := validate.Struct(req)
	if errs == nil {
		errs = validate.FieldErrors{}
	}

	var scheduledAt time.Time
	if req.ScheduledAt != "" {
		parsed, ok := parseSchedule(req.ScheduledAt, h.Location)
		if !ok {
			errs.Add("scheduledAt", "scheduledAt must be a valid date")
		}
		scheduledAt = parsed
	}

	if req.TopicID != nil {
		_, err := h.Topics.Get(c, *req.TopicID)
		if errors.Is(err, store.ErrTopicNotFound) {
			errs.Add("topicId", errmsg.EpisodeTopicNotFound.Message)
		} else if err != nil {
			return utils.StatusError(c, errmsg.InternalServerError(err))
		}
	}

	if len(errs) > 0 {
		return utils.ValidationError(c, errmsg.EpisodeInvalidRequest, errs)
	}

	episode := models.Episode{
		Status:        models.EpisodeStatusUpcoming,
		Slug:          req.Slug,
		ScheduledAt:   &scheduledAt,
		ContentName:   req.ContentName,
		TopicID:       req.TopicID,
		TitleEn:       req.TitleEn,
		TitleFa:       req.TitleFa,
		DescriptionEn: req.DescriptionEn,
		DescriptionFa: req.DescriptionFa,
		ResourcesURL:  req.ResourcesURL,
	}

	err := h.Episodes.Create(c, &episode)
	switch {
	case errors.Is(err, store.ErrSlugTaken):
		return utils.StatusError(c, errmsg.EpisodeSlugTaken)
	case errors.Is(err, store.ErrContentNameTaken):
		return utils.StatusError(c, errmsg.EpisodeContentNameTaken)
	case err != nil:
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if h.Cache != nil {
		if err := h.Cache.Invalidate(c, pagecache.ListingPaths()...); err != nil {
			log.Printf("[WARN] cache invalidation after creating episode %s failed: %v", episode.Slug, err)
		}
	}

	username := currentAdmin(c)
	log.Printf("[INFO] %s scheduled episode %d (%s) for %s", username, episode.ID, episode.Slug, episode.ContentName)
	h.Events.EpisodeCreated(username, episode)

	return c.Status(fiber.StatusCreated).JSON(episode)
}

// parseSchedule reads layouts without an offset as wall time in loc.
func parseSchedule(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
