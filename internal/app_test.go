package internal

import (
	"encoding/json"
	"net/http"
	"testing"

	"podcastsite/internal/content"
	"podcastsite/internal/env"
	"podcastsite/internal/githubhooks"
	"podcastsite/internal/mailer"
	"podcastsite/internal/models"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/store"
	"podcastsite/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	webhookSecret = "app-test-secret"

	ep1Doc = `---
titleEn: Hello
titleFa: سلام
audioUrl: https://x.com/a.mp3
publishedAt: "2024-01-01"
---
Intro EN
:::fa:::
مقدمه فارسی`

	ep1NoAudio = `---
titleEn: Hello
titleFa: سلام
publishedAt: "2024-01-01"
---
Intro EN`
)

type fixture struct {
	app      *fiber.App
	episodes *store.MemoryEpisodes
	cache    *pagecache.Memory
	fetcher  *content.MemoryFetcher
}

func newFixture(t *testing.T, files map[string]string, seed ...models.Episode) fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	f := fixture{
		episodes: store.NewMemoryEpisodes(seed...),
		cache:    pagecache.NewMemory(),
		fetcher:  content.NewMemoryFetcher(files),
	}

	f.app = NewApp(Deps{
		Config: env.Config{
			Version:       "1.2.3",
			JWTSecret:     []byte("jwt-secret"),
			WebhookSecret: webhookSecret,
			ContentOwner:  "acme",
			ContentRepo:   "content",
			ContentBranch: "main",
		},
		Episodes: f.episodes,
		Topics:   store.NewMemoryTopics(),
		Admins:   store.MemoryAdmins{"root": {Username: "root", Password: string(hash)}},
		Fetcher:  f.fetcher,
		Cache:    f.cache,
	})
	return f
}

func upcomingEp1() models.Episode {
	return models.Episode{
		Status:      models.EpisodeStatusUpcoming,
		Slug:        "ep-1",
		ContentName: "ep1.md",
		TitleEn:     "Soon",
		TitleFa:     "به زودی",
	}
}

func push(t *testing.T, app *fiber.App, ref string, added ...string) ([]byte, int) {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"ref":   ref,
		"after": "abc123",
		"commits": []map[string]any{
			{"id": "abc123", "added": added, "modified": []string{}},
		},
	})
	require.NoError(t, err)

	resp, status, _ := testutil.HeaderRequestRunner(t, app, http.MethodPost, "/api/sync-content", body, map[string]string{
		"X-Hub-Signature-256": githubhooks.ComputeSignature(webhookSecret, body),
		"X-GitHub-Event":      "push",
		"X-GitHub-Delivery":   "delivery-1",
	})
	return resp, status
}

func TestPingAndVersion(t *testing.T) {
	f := newFixture(t, nil)

	body, status := testutil.RequestRunner(t, f.app, http.MethodGet, "/ping", nil, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "PONG", string(body))

	body, status = testutil.RequestRunner(t, f.app, http.MethodGet, "/version", nil, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "v1.2.3", string(body))
}

func TestPushToOtherBranchWritesNothing(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc}, upcomingEp1())

	body, status := push(t, f.app, "refs/heads/develop", "episodes/ep1.md")
	testutil.ResponseMessageCheck(t, githubhooks.MsgIgnoredBranch, body, status)

	require.Zero(t, f.episodes.Writes())
	require.Empty(t, f.fetcher.Calls())
}

func TestPushPublishesEpisode(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc}, upcomingEp1())

	body, status := push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	testutil.ResponseMessageCheck(t, githubhooks.MsgSyncCompleted, body, status)

	ep, ok := f.episodes.Get(1)
	require.True(t, ok)
	require.Equal(t, models.EpisodeStatusPublished, ep.Status)
	require.Equal(t, "Hello", ep.TitleEn)
	require.Equal(t, "سلام", ep.TitleFa)
	require.Equal(t, "https://x.com/a.mp3", ep.AudioURL)
	require.Contains(t, ep.DescriptionEn, "<p>Intro EN</p>")
	require.Contains(t, ep.DescriptionFa, "<p>مقدمه فارسی</p>")

	require.Equal(t, []string{"episodes/ep1.md@abc123"}, f.fetcher.Calls())
	require.ElementsMatch(t, pagecache.EpisodePaths("ep-1"), f.cache.Invalidated())
}

func TestPushWithInvalidFrontmatterLeavesEpisode(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1NoAudio}, upcomingEp1())

	body, status := push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	testutil.ResponseMessageCheck(t, githubhooks.MsgSyncCompleted, body, status)

	ep, ok := f.episodes.Get(1)
	require.True(t, ok)
	require.Equal(t, upcomingEp1().Status, ep.Status)
	require.Equal(t, "Soon", ep.TitleEn)
	require.Zero(t, f.episodes.Writes())
	require.Empty(t, f.cache.Invalidated())
}

func TestPushForUnknownEpisodeCreatesNothing(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc})

	body, status := push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	testutil.ResponseMessageCheck(t, githubhooks.MsgSyncCompleted, body, status)

	list, err := f.episodes.List(t.Context(), "")
	require.NoError(t, err)
	require.Empty(t, list)
	require.Zero(t, f.episodes.Writes())
}

func TestSyncRefreshesCachedPage(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc}, upcomingEp1())

	fetchPage := func() (string, string) {
		body, status, headers := testutil.HeaderRequestRunner(t, f.app, http.MethodGet, "/en/episodes/ep-1", nil, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var page struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(body, &page))
		return page.Title, headers.Get("X-Cache")
	}

	title, cache := fetchPage()
	require.Equal(t, "Soon", title)
	require.Equal(t, "MISS", cache)

	_, cache = fetchPage()
	require.Equal(t, "HIT", cache)

	_, status := push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	require.Equal(t, http.StatusOK, status)

	title, cache = fetchPage()
	require.Equal(t, "Hello", title)
	require.Equal(t, "MISS", cache)
}

func TestSyncRefreshesEverySpellingOfAPage(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc}, upcomingEp1())

	fetchTitle := func(path string) (string, string) {
		body, status, headers := testutil.HeaderRequestRunner(t, f.app, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var page struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(body, &page))
		return page.Title, headers.Get("X-Cache")
	}

	variants := []string{"/en/episodes/ep-1/", "/en/Episodes/ep-1", "/en/episodes/ep-1"}
	for _, path := range variants {
		title, _ := fetchTitle(path)
		require.Equal(t, "Soon", title, path)
	}

	_, status := push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	require.Equal(t, http.StatusOK, status)

	title, cache := fetchTitle(variants[0])
	require.Equal(t, "Hello", title)
	require.Equal(t, "MISS", cache)

	for _, path := range variants[1:] {
		title, cache := fetchTitle(path)
		require.Equal(t, "Hello", title, path)
		require.Equal(t, "HIT", cache, path)
	}
}

func TestScheduleThenSync(t *testing.T) {
	f := newFixture(t, map[string]string{"episodes/ep1.md": ep1Doc})

	creds, err := json.Marshal(models.Admin{Username: "root", Password: "hunter22"})
	require.NoError(t, err)

	body, status := testutil.RequestRunner(t, f.app, http.MethodPost, "/api/admin/login", creds, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.Token)

	episode, err := json.Marshal(map[string]any{
		"slug":        "ep-1",
		"scheduledAt": "2024-01-01T10:00",
		"contentName": "ep1.md",
		"titleEn":     "Soon enough",
		"titleFa":     "به زودی",
	})
	require.NoError(t, err)

	body, status = testutil.RequestRunner(t, f.app, http.MethodPost, "/api/admin/episodes", episode, &login.Token)
	require.Equal(t, http.StatusCreated, status, string(body))

	_, status = push(t, f.app, "refs/heads/main", "episodes/ep1.md")
	require.Equal(t, http.StatusOK, status)

	ep, err := f.episodes.FindBySlug(t.Context(), "ep-1")
	require.NoError(t, err)
	require.Equal(t, models.EpisodeStatusPublished, ep.Status)
	require.Equal(t, "Hello", ep.TitleEn)
}

func TestDocsAreServed(t *testing.T) {
	f := newFixture(t, nil)

	body, status := testutil.RequestRunner(t, f.app, http.MethodGet, "/docs/doc.json", nil, nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "/api/sync-content")
	require.Contains(t, string(body), "/{lang}/episodes/{slug}/resources")
}

func TestResourcesEmailIsRouted(t *testing.T) {
	ep := upcomingEp1()
	ep.ResourcesURL = "https://x.com/notes"
	mail := &mailer.Memory{}

	app := NewApp(Deps{
		Config:   env.Config{WebhookSecret: webhookSecret},
		Episodes: store.NewMemoryEpisodes(ep),
		Topics:   store.NewMemoryTopics(),
		Admins:   store.MemoryAdmins{},
		Fetcher:  content.NewMemoryFetcher(nil),
		Cache:    pagecache.NewMemory(),
		Mailer:   mail,
	})

	body, status := testutil.RequestRunner(t, app, http.MethodPost, "/en/episodes/ep-1/resources", []byte(`{"email":"a@b.co"}`), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	require.Len(t, mail.Sent(), 1)
}
