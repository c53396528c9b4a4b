package internal

import (
	"context"
	"fmt"
	"time"

	"podcastsite/internal/admin"
	"podcastsite/internal/content"
	"podcastsite/internal/contentsync"
	"podcastsite/internal/db"
	"podcastsite/internal/env"
	"podcastsite/internal/events"
	"podcastsite/internal/githubhooks"
	"podcastsite/internal/mailer"
	"podcastsite/internal/pagecache"
	"podcastsite/internal/site"
	"podcastsite/internal/store"
	"podcastsite/internal/swagger"
	"podcastsite/internal/ws"

	log "github.com/go-pkgz/lgr"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v3"
)

// Deps is everything the HTTP surface needs. SetupApp fills it from live
// backends; tests fill it with in-memory ones.
type Deps struct {
	Config env.Config

	Episodes store.EpisodeStore
	Topics   store.TopicStore
	Admins   store.AdminStore
	Fetcher  content.Fetcher
	Cache    pagecache.Cache
	Events   *events.Emitter
	Hub      *ws.Hub
	Mailer   mailer.Sender
	Location *time.Location
}

// NewApp builds the fiber app and registers every route group.
func NewApp(d Deps) *fiber.App {
	app := fiber.New()
	cfg := d.Config

	hub := d.Hub
	if hub == nil {
		hub = ws.NewHub()
	}

	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	app.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + cfg.Version)
	})

	syncer := contentsync.New(contentsync.Deps{
		Fetcher:  d.Fetcher,
		Episodes: d.Episodes,
		Cache:    d.Cache,
		Events:   d.Events,
		Reports:  hub,
		Owner:    cfg.ContentOwner,
		Repo:     cfg.ContentRepo,
	})

	api := app.Group("/api")
	githubhooks.Routes(api, githubhooks.NewContentHandler(cfg.WebhookSecret, cfg.ContentBranch, syncer))
	admin.Routes(api, admin.Deps{
		Admins:   d.Admins,
		Episodes: d.Episodes,
		Topics:   d.Topics,
		Cache:    d.Cache,
		Events:   d.Events,
		Hub:      hub,
		Secret:   cfg.JWTSecret,
		Location: d.Location,
	})

	swagger.Register(app, cfg.Version)

	// the site owns /:lang/..., so it goes last
	site.Routes(app, site.Deps{
		Episodes: d.Episodes,
		Topics:   d.Topics,
		Cache:    d.Cache,
		Mailer:   d.Mailer,
	})

	return app
}

// Server is a running app together with the connections it owns.
type Server struct {
	App *fiber.App

	mongo  *db.Mongo
	redis  *redis.Client
	events *events.Emitter
}

// SetupApp connects to MongoDB and Redis and builds the app on top of them.
func SetupApp(ctx context.Context, cfg env.Config) (*Server, error) {
	if len(cfg.JWTSecret) == 0 {
		log.Printf("[WARN] JWT_SECRET is empty, admin tokens are signed with an empty key")
	}
	if cfg.WebhookSecret == "" {
		log.Printf("[WARN] GITHUB_CONTENT_WEBHOOK_SECRET is empty, every content webhook will be rejected")
	}
	if cfg.ContentOwner == "" {
		log.Printf("[WARN] CONTENT_REPO is not set, content sync cannot fetch files")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongo, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("could not connect to MongoDB: %w", err)
	}

	rdb, err := db.ConnectCache(connectCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		_ = mongo.Close(context.Background())
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}

	emitter := events.NewEmitter(mongo.Events, loc)

	var sender mailer.Sender
	if cfg.ResendAPIKey != "" {
		sender = mailer.NewResend(cfg.ResendAPIKey, cfg.MailFrom)
	} else {
		log.Printf("[WARN] RESEND_API_KEY is not set, resources emails are disabled")
	}

	app := NewApp(Deps{
		Config:   cfg,
		Episodes: store.NewMongoEpisodes(mongo),
		Topics:   store.NewMongoTopics(mongo),
		Admins:   store.NewMongoAdmins(mongo),
		Fetcher:  content.NewGitHubFetcher(ctx, cfg.ContentRepoPAT),
		Cache:    pagecache.NewRedis(rdb, cfg.PageCacheTTL),
		Events:   emitter,
		Hub:      ws.NewHub(),
		Mailer:   sender,
		Location: loc,
	})

	return &Server{App: app, mongo: mongo, redis: rdb, events: emitter}, nil
}

// Close flushes pending events and drops the backend connections.
func (s *Server) Close(ctx context.Context) {
	s.events.Close()

	if err := s.redis.Close(); err != nil {
		log.Printf("[WARN] redis close: %v", err)
	}
	if err := s.mongo.Close(ctx); err != nil {
		log.Printf("[WARN] mongo close: %v", err)
	}
}
