// @title Podcast Site API
// @version 1.0.0
// @description Content sync webhook, admin scheduling API and cached public pages of the bilingual podcast site.
// @BasePath /
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @description Provide the admin bearer token as `Bearer <token>`.

// @Tag.name Meta
// @Tag.description Operational checks and metadata about the service.

// @Tag.name Content Webhooks
// @Tag.description Content repository push notifications.

// @Tag.name Site
// @Tag.description Cached public pages.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"podcastsite/internal"
	"podcastsite/internal/env"

	"github.com/go-pkgz/lgr"
	"github.com/gofiber/fiber/v3"
	"github.com/jessevdk/go-flags"
)

var opts struct {
	Port       string `short:"p" long:"port" env:"PORT" default:"8080" description:"port to listen on"`
	EnvRoot    string `long:"env-root" env:"ENV_ROOT" description:"directory containing the .env file"`
	AppVersion string `long:"app-version" env:"APP_VERSION" description:"application version override"`
	Dbg        bool   `long:"dbg" description:"show debug info"`
}

func main() {
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	cfg, err := env.Load(opts.EnvRoot, opts.AppVersion)
	if err != nil {
		lgr.Fatalf("[ERROR] can't load config, %v", err)
	}

	if opts.Dbg || cfg.Debug {
		lgr.Setup(lgr.Debug, lgr.CallerFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := internal.SetupApp(ctx, cfg)
	if err != nil {
		lgr.Fatalf("[ERROR] can't set up app, %v", err)
	}

	lgr.Printf("[INFO] podcast site v%s", cfg.Version)

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down")
		if err := srv.App.ShutdownWithTimeout(10 * time.Second); err != nil {
			lgr.Printf("[WARN] shutdown: %v", err)
		}
	}()

	port := strings.TrimSpace(opts.Port)
	if err := srv.App.Listen(":"+port, fiber.ListenConfig{
		EnablePrefork:         cfg.Prefork,
		DisableStartupMessage: !cfg.Debug,
	}); err != nil {
		lgr.Printf("[ERROR] listening on port %s: %v", port, err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Close(closeCtx)
}
