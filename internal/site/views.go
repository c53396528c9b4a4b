package site

import (
	"time"

	"podcastsite/internal/content"
	"podcastsite/internal/models"
)

// recentLimit caps the published episodes shown on the home page.
const recentLimit = 3

type EpisodeSummary struct {
	ID            int64                `json:"id"`
	Slug          string               `json:"slug"`
	Status        models.EpisodeStatus `json:"status"`
	TitleEn       string               `json:"titleEn"`
	TitleFa       string               `json:"titleFa"`
	DescriptionEn string               `json:"descriptionEn"`
	DescriptionFa string               `json:"descriptionFa"`
	ScheduledAt   *time.Time           `json:"scheduledAt,omitempty"`
	PublishedAt   *time.Time           `json:"publishedAt,omitempty"`
	Links         map[string]string    `json:"links"`
}

type HomePage struct {
	Upcoming []EpisodeSummary `json:"upcoming"`
	Recent   []EpisodeSummary `json:"recent"`
}

type ListPage struct {
	Episodes []EpisodeSummary `json:"episodes"`
}

type TopicView struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type EpisodePage struct {
	Lang string `json:"lang"`
	Dir  string `json:"dir"`

	ID              int64                `json:"id"`
	Slug            string               `json:"slug"`
	Status          models.EpisodeStatus `json:"status"`
	Title           string               `json:"title"`
	DescriptionHTML string               `json:"descriptionHtml"`
	AudioURL        string               `json:"audioUrl,omitempty"`
	ResourcesURL    string               `json:"resourcesUrl,omitempty"`
	ScheduledAt     *time.Time           `json:"scheduledAt,omitempty"`
	PublishedAt     *time.Time           `json:"publishedAt,omitempty"`
	Topic           *TopicView           `json:"topic,omitempty"`

	// Alternate links to the same episode in every locale.
	Alternates map[string]string `json:"alternates"`
}

func episodeLinks(slug string) map[string]string {
	links := make(map[string]string, len(locales))
	for _, l := range locales {
		links[l] = "/" + l + "/episodes/" + slug
	}
	return links
}

func summarize(ep models.Episode) EpisodeSummary {
	return EpisodeSummary{
		ID:            ep.ID,
		Slug:          ep.Slug,
		Status:        ep.Status,
		TitleEn:       ep.TitleEn,
		TitleFa:       ep.TitleFa,
		DescriptionEn: content.DisplayHTML(ep.DescriptionEn),
		DescriptionFa: content.DisplayHTML(ep.DescriptionFa),
		ScheduledAt:   ep.ScheduledAt,
		PublishedAt:   ep.PublishedAt,
		Links:         episodeLinks(ep.Slug),
	}
}

// buildHome splits newest-first episodes into upcoming and recent sections.
func buildHome(episodes []models.Episode) HomePage {
	page := HomePage{Upcoming: []EpisodeSummary{}, Recent: []EpisodeSummary{}}

	for _, ep := range episodes {
		switch ep.Status {
		case models.EpisodeStatusUpcoming:
			page.Upcoming = append(page.Upcoming, summarize(ep))
		case models.EpisodeStatusPublished:
			if len(page.Recent) < recentLimit {
				page.Recent = append(page.Recent, summarize(ep))
			}
		}
	}
	return page
}

func buildList(episodes []models.Episode) ListPage {
	page := ListPage{Episodes: []EpisodeSummary{}}
	for _, ep := range episodes {
		if ep.Status == models.EpisodeStatusArchived {
			continue
		}
		page.Episodes = append(page.Episodes, summarize(ep))
	}
	return page
}

func buildEpisode(lang string, ep models.Episode, topic *models.Topic) EpisodePage {
	page := EpisodePage{
		Lang:            lang,
		Dir:             Dir(lang),
		ID:              ep.ID,
		Slug:            ep.Slug,
		Status:          ep.Status,
		Title:           ep.Title(lang),
		DescriptionHTML: content.DisplayHTML(ep.Description(lang)),
		AudioURL:        ep.AudioURL,
		ResourcesURL:    ep.ResourcesURL,
		ScheduledAt:     ep.ScheduledAt,
		PublishedAt:     ep.PublishedAt,
		Alternates:      episodeLinks(ep.Slug),
	}

	if topic != nil {
		title := topic.TitleEn
		if lang == "fa" {
			title = topic.TitleFa
		}
		page.Topic = &TopicView{ID: topic.ID, Title: title}
	}
	return page
}
