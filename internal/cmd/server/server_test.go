package server

import (
	"flag"
	"os"
	"testing"
)

func clearQuillEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"QUILL_HTTP_ADDR",
		"QUILL_DB_PATH",
		"QUILL_SESSION_KEY",
		"QUILL_ADMIN_USERNAME",
		"QUILL_ADMIN_PASSWORD",
		"QUILL_CONTENT_MODE",
	} {
		// t.Setenv registers the restore; the variable itself must be
		// absent so envDefault values apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearQuillEnv(t)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/quill.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("AdminUsername = %q", cfg.AdminUsername)
	}
	if cfg.SessionKey != "" || cfg.AdminPassword != "" || cfg.ContentMode != "" {
		t.Fatalf("unexpected non-empty secrets: %+v", cfg)
	}
}

func TestParseConfigEnvironment(t *testing.T) {
	clearQuillEnv(t)
	t.Setenv("QUILL_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("QUILL_DB_PATH", "/tmp/blog.db")
	t.Setenv("QUILL_ADMIN_USERNAME", "editor")
	t.Setenv("QUILL_ADMIN_PASSWORD", "hunter2")
	t.Setenv("QUILL_CONTENT_MODE", "sanitize")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" || cfg.DBPath != "/tmp/blog.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.AdminUsername != "editor" || cfg.AdminPassword != "hunter2" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ContentMode != "sanitize" {
		t.Fatalf("ContentMode = %q", cfg.ContentMode)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	clearQuillEnv(t)
	t.Setenv("QUILL_HTTP_ADDR", "localhost:8888")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7777", "-content-mode", "sanitize"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.HTTPAddr != "localhost:7777" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.ContentMode != "sanitize" {
		t.Fatalf("ContentMode = %q", cfg.ContentMode)
	}
}
