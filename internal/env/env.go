package env

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/joho/godotenv"
)

const (
	defaultMongoDatabase = "podcast"
	defaultRedisAddr     = "127.0.0.1:6379"
	defaultContentBranch = "main"
	defaultTimezone      = "America/Vancouver"
	defaultPageCacheTTL  = 10 * time.Minute
	defaultMailFrom      = "no-reply@localhost"
)

// Config carries every setting the server needs. It is built once at startup
// and handed to the components that need it.
type Config struct {
	Version string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret []byte

	WebhookSecret  string
	ContentRepoPAT string
	ContentOwner   string
	ContentRepo    string
	ContentBranch  string

	// ResendAPIKey enables the resources email; empty disables it.
	ResendAPIKey string
	MailFrom     string

	PageCacheTTL time.Duration
	Timezone     string

	Prefork bool
	Debug   bool
}

// Load reads <envRoot>/.env (when present) on top of the process environment
// and resolves the application version.
func Load(envRoot string, appVersion string) (Config, error) {
	loadEnv(envRoot)

	cfg := Config{
		Version:        loadVersion(appVersion),
		MongoURI:       strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase:  getEnv("MONGO_DATABASE", defaultMongoDatabase),
		RedisAddr:      getEnv("REDIS_ADDR", defaultRedisAddr),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      []byte(os.Getenv("JWT_SECRET")),
		WebhookSecret:  strings.TrimSpace(os.Getenv("GITHUB_CONTENT_WEBHOOK_SECRET")),
		ContentRepoPAT: strings.TrimSpace(os.Getenv("GITHUB_CONTENT_REPO_PAT")),
		ContentBranch:  getEnv("CONTENT_BRANCH", defaultContentBranch),
		ResendAPIKey:   strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		MailFrom:       getEnv("MAIL_FROM", defaultMailFrom),
		PageCacheTTL:   defaultPageCacheTTL,
		Timezone:       getEnv("TIMEZONE", defaultTimezone),
	}

	cfg.Prefork, _ = strconv.ParseBool(os.Getenv("PREFORK"))
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))

	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = n
	}

	if raw := strings.TrimSpace(os.Getenv("PAGE_CACHE_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PAGE_CACHE_TTL %q: %w", raw, err)
		}
		cfg.PageCacheTTL = ttl
	}

	owner, repo, err := ParseRepo(getEnv("CONTENT_REPO", ""))
	if err != nil {
		return Config{}, err
	}
	cfg.ContentOwner, cfg.ContentRepo = owner, repo

	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}

// ParseRepo splits an "owner/name" repository identifier. An empty value is
// allowed so the server can boot without content sync configured.
func ParseRepo(full string) (owner string, repo string, err error) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", "", nil
	}

	owner, repo, ok := strings.Cut(full, "/")
	owner, repo = strings.TrimSpace(owner), strings.TrimSpace(repo)
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("CONTENT_REPO must look like owner/name, got %q", full)
	}

	return owner, repo, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func loadEnv(envRoot string) {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Overload(path); err != nil {
		// the process environment alone is a valid configuration in containers
		log.Printf("[WARN] no env file loaded from %s: %v", path, err)
	}
}

func loadVersion(appVersion string) string {
	if appVersion != "" {
		return appVersion
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		return "unknown"
	}

	if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
		return trimmed
	}
	return "unknown"
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
