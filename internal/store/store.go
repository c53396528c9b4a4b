// Package store persists episodes, topics and admins.
package store

import (
	"context"
	"errors"

	"podcastsite/internal/models"
)

var (
	ErrEpisodeNotFound  = errors.New("episode not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrSlugTaken        = errors.New("slug already exists")
	ErrContentNameTaken = errors.New("content name already linked")
)

// EpisodeStore is the persistence surface used by the sync flow, the admin
// API and the public site.
type EpisodeStore interface {
	FindByContentName(ctx context.Context, contentName string) (*models.Episode, error)
	FindBySlug(ctx context.Context, slug string) (*models.Episode, error)
	// Publish applies a content sync to a single episode by id.
	Publish(ctx context.Context, id int64, pub models.Publication) error
	Create(ctx context.Context, episode *models.Episode) error
	// List returns episodes newest first. An empty status lists everything.
	List(ctx context.Context, status models.EpisodeStatus) ([]models.Episode, error)
}

type TopicStore interface {
	Create(ctx context.Context, topic *models.Topic) error
	Get(ctx context.Context, id int64) (*models.Topic, error)
	List(ctx context.Context) ([]models.Topic, error)
}

type AdminStore interface {
	Get(ctx context.Context, username string) (*models.Admin, error)
	// Put creates the admin or replaces the stored password hash.
	Put(ctx context.Context, admin models.Admin) error
}
