// Package pagecache stores rendered public responses in Redis keyed by
// request path, and drops them when the underlying episodes change.
package pagecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "page:"

// Invalidator drops cached pages by path.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// Cache is a path keyed page cache. A miss is reported as ok == false with a
// nil error.
type Cache interface {
	Invalidator
	Get(ctx context.Context, path string) (page []byte, ok bool, err error)
	Set(ctx context.Context, path string, page []byte) error
}

// Key maps a request path to its Redis key.
func Key(path string) string {
	return keyPrefix + path
}

const (
	HomePath = "/"
	ListPath = "/episodes"
)

// ListingPaths are the pages that list episodes.
func ListingPaths() []string {
	return []string{HomePath, ListPath}
}

// EpisodePath is the canonical detail page path of slug in lang.
func EpisodePath(lang, slug string) string {
	return "/" + lang + "/episodes/" + slug
}

// EpisodePaths are every page that shows the episode with slug, listings
// included.
func EpisodePaths(slug string) []string {
	return append(ListingPaths(), EpisodePath("en", slug), EpisodePath("fa", slug))
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis builds a cache whose entries expire after ttl. Zero keeps entries
// until they are invalidated.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, path string) ([]byte, bool, error) {
	page, err := r.client.Get(ctx, Key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get page %s: %w", path, err)
	}
	return page, true, nil
}

func (r *Redis) Set(ctx context.Context, path string, page []byte) error {
	if err := r.client.Set(ctx, Key(path), page, r.ttl).Err(); err != nil {
		return fmt.Errorf("set page %s: %w", path, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = Key(p)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate %v: %w", paths, err)
	}
	return nil
}
