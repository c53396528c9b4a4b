package events

import (
	"strconv"

	"podcastsite/internal/models"
)

func (e *Emitter) AdminLogin(username string) {
	if e == nil {
		return
	}

	evt := models.Event{
		Action: "admin.login",

		ActorRole: ActorAdmin,
		ActorID:   username,

		TargetType: TargetAdmin,
		TargetID:   username,

		Props: nil,
	}

	e.Emit(evt)
}

// EpisodeCreated records an admin scheduling a new episode.
func (e *Emitter) EpisodeCreated(username string, episode models.Episode) {
	if e == nil {
		return
	}

	evt := models.Event{
		Action: "episode.created",

		ActorRole: ActorAdmin,
		ActorID:   username,

		TargetType: TargetEpisode,
		TargetID:   EpisodeID(episode.ID),

		Props: map[string]any{
			"slug":        episode.Slug,
			"contentName": episode.ContentName,
		},
	}

	e.Emit(evt)
}

func (e *Emitter) TopicCreated(username string, topic models.Topic) {
	if e == nil {
		return
	}

	evt := models.Event{
		Action: "topic.created",

		ActorRole: ActorAdmin,
		ActorID:   username,

		TargetType: TargetTopic,
		TargetID:   strconv.FormatInt(topic.ID, 10),

		Props: map[string]any{
			"titleEn": topic.TitleEn,
		},
	}

	e.Emit(evt)
}
