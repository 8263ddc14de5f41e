// Package server wires configuration, storage, auth and the HTTP surface
// into a runnable blog process.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmoreira/quill/internal/blog/article"
	"github.com/lmoreira/quill/internal/blog/auth"
	"github.com/lmoreira/quill/internal/blog/render"
	"github.com/lmoreira/quill/internal/blog/storage/sqlite"
	"github.com/lmoreira/quill/internal/platform/config"
	"github.com/lmoreira/quill/internal/platform/otel"
	"github.com/lmoreira/quill/internal/web"
)

const defaultAdminUsername = "admin"

// Config holds the server command configuration. Environment variables are
// the base layer; flags override them.
type Config struct {
	HTTPAddr      string `env:"QUILL_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath        string `env:"QUILL_DB_PATH" envDefault:"data/quill.db"`
	SessionKey    string `env:"QUILL_SESSION_KEY"`
	AdminUsername string `env:"QUILL_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"QUILL_ADMIN_PASSWORD"`
	ContentMode   string `env:"QUILL_CONTENT_MODE"`
}

// ParseConfig loads environment configuration and parses flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.ContentMode, "content-mode", cfg.ContentMode, "article content mode (trusted or sanitize)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the blog server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	signingKey, err := auth.ParseSigningKey(cfg.SessionKey)
	if err != nil {
		return fmt.Errorf("session key: %w", err)
	}
	mode, err := render.ParseMode(cfg.ContentMode)
	if err != nil {
		return fmt.Errorf("content mode: %w", err)
	}

	shutdownTracing, err := otel.Setup(ctx, "quill")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	username := strings.TrimSpace(cfg.AdminUsername)
	if username == "" {
		username = defaultAdminUsername
	}
	created, generated, err := auth.EnsureAdmin(ctx, store, username, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}
	if created {
		if generated != "" {
			// Printed exactly once, on first boot; the database only keeps
			// the hash.
			log.Printf("created admin account %q with generated password: %s", username, generated)
		} else {
			log.Printf("created admin account %q", username)
		}
	}

	sessions, err := auth.NewManager(store, signingKey)
	if err != nil {
		return fmt.Errorf("init session manager: %w", err)
	}

	server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr}, article.NewService(store), sessions, render.New(mode))
	if err != nil {
		return fmt.Errorf("init blog server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve blog: %w", err)
	}
	return nil
}
