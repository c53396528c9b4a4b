package pagecache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
	"unsafe"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestEpisodePaths(t *testing.T) {
	require.Equal(t,
		[]string{"/", "/episodes", "/en/episodes/ep-1", "/fa/episodes/ep-1"},
		EpisodePaths("ep-1"),
	)
	require.Equal(t, "page:/fa/episodes/ep-1", Key("/fa/episodes/ep-1"))
	require.Equal(t, "/en/episodes/ep-1", EpisodePath("en", "ep-1"))
}

func TestEpisodePathsDoesNotShareListing(t *testing.T) {
	a := EpisodePaths("a")
	b := EpisodePaths("b")
	a[0] = "changed"

	require.Equal(t, "/", b[0])
	require.Equal(t, "/", ListingPaths()[0])
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "/")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(ctx, "/", []byte("home")))
	require.NoError(t, m.Set(ctx, "/episodes", []byte("list")))

	page, ok, err := m.Get(ctx, "/")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "home", string(page))

	require.NoError(t, m.Invalidate(ctx, "/"))

	_, ok, _ = m.Get(ctx, "/")
	require.False(t, ok)
	_, ok, _ = m.Get(ctx, "/episodes")
	require.True(t, ok)
	require.Equal(t, []string{"/"}, m.Invalidated())
}

func TestMemoryCacheOwnsItsKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	// a key aliasing a buffer the caller reuses, like a fasthttp request path
	buf := []byte("/en/episodes/ep-1")
	require.NoError(t, m.Set(ctx, unsafe.String(&buf[0], len(buf)), []byte("page")))
	copy(buf, "/fa/episodes/xx-9")

	_, ok, err := m.Get(ctx, "/en/episodes/ep-1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.Invalidate(ctx, "/en/episodes/ep-1"))
	_, ok, _ = m.Get(ctx, "/en/episodes/ep-1")
	require.False(t, ok)
}

func TestMemoryCacheFailure(t *testing.T) {
	m := NewMemory()
	m.Err = errors.New("down")

	err := m.Invalidate(context.Background(), "/")
	require.ErrorContains(t, err, "down")
	require.Equal(t, []string{"/"}, m.Invalidated())
}

// TestRedisCache runs against a live server when TEST_REDIS_ADDR is set.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedis(client, time.Minute)
	path := "/en/episodes/pagecache-test"

	require.NoError(t, c.Set(ctx, path, []byte(`{"ok":true}`)))

	page, ok, err := c.Get(ctx, path)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"ok":true}`, string(page))

	require.NoError(t, c.Invalidate(ctx, path))

	_, ok, err = c.Get(ctx, path)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Invalidate(ctx))
}
