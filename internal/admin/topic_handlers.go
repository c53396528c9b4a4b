package admin

import (
	"encoding/json"
	"strings"

	"podcastsite/internal/errmsg"
	"podcastsite/internal/models"
	"podcastsite/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// @Summary List topics
// @Tags Admin Topics
// @Security AdminAuth
// @Produce json
// @Success 200 {array} models.Topic
// @Failure 401 {object} errmsg._AdminNoToken
// @Router /api/admin/topics [get]
func (h *handlers) listTopics(c fiber.Ctx) error {
	topics, err := h.Topics.List(c)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(topics)
}

// @Summary Create topic
// @Tags Admin Topics
// @Security AdminAuth
// @Accept json
// @Produce json
// @Param topic body models.Topic true "Topic titles"
// @Success 201 {object} models.Topic
// @Failure 400 {object} errmsg._TopicInvalidRequest
// @Failure 401 {object} errmsg._AdminNoToken
// @Router /api/admin/topics [post]
func (h *handlers) createTopic(c fiber.Ctx) error {
	var topic models.Topic
	if err := json.Unmarshal(c.Body(), &topic); err != nil {
		return utils.StatusError(c, errmsg.TopicInvalidRequest)
	}

	topic.ID = 0
	topic.TitleEn = strings.TrimSpace(topic.TitleEn)
	topic.TitleFa = strings.TrimSpace(topic.TitleFa)
	if topic.TitleEn == "" || topic.TitleFa == "" {
		return utils.StatusError(c, errmsg.TopicInvalidRequest)
	}

	if err := h.Topics.Create(c, &topic); err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	h.Events.TopicCreated(currentAdmin(c), topic)

	return c.Status(fiber.StatusCreated).JSON(topic)
}
