package db

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo bundles the client with the collections the site reads and writes.
type Mongo struct {
	Client *mongo.Client

	Episodes *mongo.Collection
	Topics   *mongo.Collection
	Admins   *mongo.Collection
	Counters *mongo.Collection
	Events   *mongo.Collection
}

// Connect dials MongoDB, verifies the connection and makes sure the unique
// indexes the sync and admin flows rely on exist.
func Connect(ctx context.Context, uri string, database string) (*Mongo, error) {
	client, err := mongo.Connect(
		ctx,
		options.Client().ApplyURI(uri),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m := &Mongo{
		Client:   client,
		Episodes: GetCollection(database, "episodes", client),
		Topics:   GetCollection(database, "topics", client),
		Admins:   GetCollection(database, "admins", client),
		Counters: GetCollection(database, "counters", client),
		Events:   GetCollection(database, "events", client),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Printf("[INFO] connected to mongo database %s", database)
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{m.Episodes, mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		{m.Episodes, mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		{m.Episodes, mongo.IndexModel{Keys: bson.D{{Key: "contentName", Value: 1}}, Options: unique}},
		{m.Topics, mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		{m.Admins, mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.coll.Name(), err)
		}
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

// ConnectCache dials Redis and pings it once.
func ConnectCache(ctx context.Context, addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Printf("[INFO] connected to redis at %s db %d", addr, db)
	return rdb, nil
}
