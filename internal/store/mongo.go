package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"podcastsite/internal/db"
	"podcastsite/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEpisodes implements EpisodeStore over the episodes collection.
type MongoEpisodes struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewMongoEpisodes(m *db.Mongo) *MongoEpisodes {
	return &MongoEpisodes{coll: m.Episodes, counters: m.Counters}
}

func (s *MongoEpisodes) FindByContentName(ctx context.Context, contentName string) (*models.Episode, error) {
	return s.findOne(ctx, bson.M{"contentName": contentName})
}

func (s *MongoEpisodes) FindBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *MongoEpisodes) findOne(ctx context.Context, filter bson.M) (*models.Episode, error) {
	var episode models.Episode
	err := s.coll.FindOne(ctx, filter).Decode(&episode)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEpisodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// Publish sets only content derived fields so replaying a sync leaves the
// document unchanged.
func (s *MongoEpisodes) Publish(ctx context.Context, id int64, pub models.Publication) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"status":        models.EpisodeStatusPublished,
			"titleEn":       pub.TitleEn,
			"titleFa":       pub.TitleFa,
			"descriptionEn": pub.DescriptionEn,
			"descriptionFa": pub.DescriptionFa,
			"audioUrl":      pub.AudioURL,
			"publishedAt":   pub.PublishedAt.UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}

func (s *MongoEpisodes) Create(ctx context.Context, episode *models.Episode) error {
	id, err := nextSequence(ctx, s.counters, "episodes")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	episode.ID = id
	episode.CreatedAt = now
	episode.UpdatedAt = now

	_, err = s.coll.InsertOne(ctx, episode)
	if mongo.IsDuplicateKeyError(err) {
		return duplicateEpisodeError(err)
	}
	return err
}

func (s *MongoEpisodes) List(ctx context.Context, status models.EpisodeStatus) ([]models.Episode, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	episodes := []models.Episode{}
	if err := cursor.All(ctx, &episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}

func duplicateEpisodeError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "contentName_1"):
		return ErrContentNameTaken
	case strings.Contains(msg, "slug_1"):
		return ErrSlugTaken
	default:
		return err
	}
}

// MongoTopics implements TopicStore.
type MongoTopics struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewMongoTopics(m *db.Mongo) *MongoTopics {
	return &MongoTopics{coll: m.Topics, counters: m.Counters}
}

func (s *MongoTopics) Create(ctx context.Context, topic *models.Topic) error {
	id, err := nextSequence(ctx, s.counters, "topics")
	if err != nil {
		return err
	}
	topic.ID = id

	_, err = s.coll.InsertOne(ctx, topic)
	return err
}

func (s *MongoTopics) Get(ctx context.Context, id int64) (*models.Topic, error) {
	var topic models.Topic
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&topic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *MongoTopics) List(ctx context.Context) ([]models.Topic, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	topics := []models.Topic{}
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// MongoAdmins implements AdminStore.
type MongoAdmins struct {
	coll *mongo.Collection
}

func NewMongoAdmins(m *db.Mongo) *MongoAdmins {
	return &MongoAdmins{coll: m.Admins}
}

func (s *MongoAdmins) Get(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	if admin.Password == "" {
		return nil, ErrAdminNotFound
	}
	return &admin, nil
}

func (s *MongoAdmins) Put(ctx context.Context, admin models.Admin) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"username": admin.Username},
		bson.M{"$set": bson.M{"username": admin.Username, "password": admin.Password}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("put admin %s: %w", admin.Username, err)
	}
	return nil
}

// nextSequence increments the named counter and returns the new value.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}

	return counter.Seq, nil
}
