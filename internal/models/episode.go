package models

import "time"

type EpisodeStatus string

const (
	EpisodeStatusUpcoming  EpisodeStatus = "upcoming"
	EpisodeStatusPublished EpisodeStatus = "published"
	EpisodeStatusArchived  EpisodeStatus = "archived"
)

// Episode is scheduled by an admin and filled in from the content repository
// once its Markdown file lands on the main branch.
type Episode struct {
	ID          int64         `bson:"id" json:"id"`
	Status      EpisodeStatus `bson:"status" json:"status"`
	Slug        string        `bson:"slug" json:"slug"`
	ScheduledAt *time.Time    `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`

	// ContentName is the file name under episodes/ in the content repository.
	ContentName string `bson:"contentName" json:"contentName"`
	TopicID     *int64 `bson:"topicId,omitempty" json:"topicId,omitempty"`

	TitleEn       string `bson:"titleEn" json:"titleEn"`
	TitleFa       string `bson:"titleFa" json:"titleFa"`
	DescriptionEn string `bson:"descriptionEn" json:"descriptionEn"`
	DescriptionFa string `bson:"descriptionFa" json:"descriptionFa"`

	AudioURL     string     `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
	ResourcesURL string     `bson:"resourcesUrl,omitempty" json:"resourcesUrl,omitempty"`
	PublishedAt  *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Publication holds the fields a content sync writes onto an episode.
type Publication struct {
	TitleEn       string
	TitleFa       string
	DescriptionEn string
	DescriptionFa string
	AudioURL      string
	PublishedAt   time.Time
}

// Title returns the episode title for the given locale.
func (e Episode) Title(lang string) string {
	if lang == "fa" {
		return e.TitleFa
	}
	return e.TitleEn
}

// Description returns the rendered description HTML for the given locale.
func (e Episode) Description(lang string) string {
	if lang == "fa" {
		return e.DescriptionFa
	}
	return e.DescriptionEn
}
