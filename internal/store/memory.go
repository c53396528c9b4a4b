package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"podcastsite/internal/models"
)

// MemoryEpisodes is an in-process EpisodeStore with the same uniqueness rules
// as the Mongo indexes. Used by tests and local tooling.
type MemoryEpisodes struct {
	mu       sync.Mutex
	episodes map[int64]models.Episode
	nextID   int64
	writes   int
}

func NewMemoryEpisodes(seed ...models.Episode) *MemoryEpisodes {
	s := &MemoryEpisodes{episodes: map[int64]models.Episode{}}
	for _, ep := range seed {
		if ep.ID == 0 {
			s.nextID++
			ep.ID = s.nextID
		} else if ep.ID > s.nextID {
			s.nextID = ep.ID
		}
		s.episodes[ep.ID] = ep
	}
	return s
}

// Writes reports how many mutating calls succeeded.
func (s *MemoryEpisodes) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Get returns a copy of the stored episode.
func (s *MemoryEpisodes) Get(id int64) (models.Episode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ep, ok := s.episodes[id]
	return ep, ok
}

func (s *MemoryEpisodes) FindByContentName(_ context.Context, contentName string) (*models.Episode, error) {
	return s.find(func(ep models.Episode) bool { return ep.ContentName == contentName })
}

func (s *MemoryEpisodes) FindBySlug(_ context.Context, slug string) (*models.Episode, error) {
	return s.find(func(ep models.Episode) bool { return ep.Slug == slug })
}

func (s *MemoryEpisodes) find(match func(models.Episode) bool) (*models.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ep := range s.episodes {
		if match(ep) {
			found := ep
			return &found, nil
		}
	}
	return nil, ErrEpisodeNotFound
}

func (s *MemoryEpisodes) Publish(_ context.Context, id int64, pub models.Publication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep, ok := s.episodes[id]
	if !ok {
		return ErrEpisodeNotFound
	}

	publishedAt := pub.PublishedAt.UTC()
	ep.Status = models.EpisodeStatusPublished
	ep.TitleEn = pub.TitleEn
	ep.TitleFa = pub.TitleFa
	ep.DescriptionEn = pub.DescriptionEn
	ep.DescriptionFa = pub.DescriptionFa
	ep.AudioURL = pub.AudioURL
	ep.PublishedAt = &publishedAt

	s.episodes[id] = ep
	s.writes++
	return nil
}

func (s *MemoryEpisodes) Create(_ context.Context, episode *models.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ep := range s.episodes {
		if ep.Slug == episode.Slug {
			return ErrSlugTaken
		}
		if ep.ContentName == episode.ContentName {
			return ErrContentNameTaken
		}
	}

	s.nextID++
	now := time.Now().UTC()
	episode.ID = s.nextID
	episode.CreatedAt = now
	episode.UpdatedAt = now

	s.episodes[episode.ID] = *episode
	s.writes++
	return nil
}

func (s *MemoryEpisodes) List(_ context.Context, status models.EpisodeStatus) ([]models.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	episodes := []models.Episode{}
	for _, ep := range s.episodes {
		if status == "" || ep.Status == status {
			episodes = append(episodes, ep)
		}
	}
	sort.Slice(episodes, func(i, j int) bool { return episodes[i].ID > episodes[j].ID })
	return episodes, nil
}

// MemoryTopics is an in-process TopicStore.
type MemoryTopics struct {
	mu     sync.Mutex
	topics []models.Topic
}

func NewMemoryTopics(seed ...models.Topic) *MemoryTopics {
	return &MemoryTopics{topics: append([]models.Topic(nil), seed...)}
}

func (s *MemoryTopics) Create(_ context.Context, topic *models.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic.ID = int64(len(s.topics) + 1)
	s.topics = append(s.topics, *topic)
	return nil
}

func (s *MemoryTopics) Get(_ context.Context, id int64) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.topics {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, ErrTopicNotFound
}

func (s *MemoryTopics) List(_ context.Context) ([]models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Topic{}, s.topics...), nil
}

// MemoryAdmins is an in-process AdminStore keyed by username.
type MemoryAdmins map[string]models.Admin

func (s MemoryAdmins) Get(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := s[username]
	if !ok || admin.Password == "" {
		return nil, ErrAdminNotFound
	}
	return &admin, nil
}

func (s MemoryAdmins) Put(_ context.Context, admin models.Admin) error {
	s[admin.Username] = admin
	return nil
}
