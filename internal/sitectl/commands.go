package sitectl

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"podcastsite/internal/content"
	"podcastsite/internal/db"
	"podcastsite/internal/env"
	"podcastsite/internal/store"
)

// Options is the go-flags command tree of sitectl.
type Options struct {
	Ping     PingCommand     `command:"ping" description:"check that the site answers /ping"`
	Version  VersionCommand  `command:"version" description:"show the version of the running site"`
	AdminAdd AdminAddCommand `command:"admin-add" description:"create an admin or reset its password"`
	Check    CheckCommand    `command:"check" description:"validate local episode files before pushing them"`
}

type PingCommand struct {
	Host string `long:"host" env:"SITE_HOST" default:"localhost:8080" description:"site host:port"`

	out io.Writer
}

func (c *PingCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("ping: unexpected arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := NewClient(c.Host).Ping(ctx); err != nil {
		return fmt.Errorf("site is not responding: %w", err)
	}

	fmt.Fprintln(writer(c.out), "PONG")
	return nil
}

type VersionCommand struct {
	Host string `long:"host" env:"SITE_HOST" default:"localhost:8080" description:"site host:port"`

	out io.Writer
}

func (c *VersionCommand) Execute(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, err := NewClient(c.Host).Version(ctx)
	if err != nil {
		fmt.Fprintln(writer(c.out), "No version detected")
		return nil
	}

	fmt.Fprintln(writer(c.out), version)
	return nil
}

type AdminAddCommand struct {
	EnvRoot  string `long:"env-root" env:"ENV_ROOT" description:"directory containing the .env file"`
	Username string `short:"u" long:"username" required:"true" description:"admin username"`
	Password string `long:"password" env:"SITECTL_PASSWORD" description:"admin password, at least 8 characters"`
}

func (c *AdminAddCommand) Execute(args []string) error {
	cfg, err := env.Load(c.EnvRoot, "")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongo, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer mongo.Close(context.Background())

	if err := AddAdmin(ctx, store.NewMongoAdmins(mongo), c.Username, c.Password); err != nil {
		return err
	}

	fmt.Printf("admin %s saved\n", c.Username)
	return nil
}

type CheckCommand struct {
	Args struct {
		Files []string `positional-arg-name:"file" required:"1"`
	} `positional-args:"yes"`

	out io.Writer
}

func (c *CheckCommand) Execute(args []string) error {
	results := CheckFiles(content.NewRenderer(), c.Args.Files)
	if !WriteCheckReport(writer(c.out), results) {
		return fmt.Errorf("some episode files are invalid")
	}
	return nil
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
