package sessionkey

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/lmoreira/quill/internal/blog/auth"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Bytes != 32 {
		t.Fatalf("Bytes = %d", cfg.Bytes)
	}
}

func TestRunWritesUsableKey(t *testing.T) {
	var out bytes.Buffer
	if err := Run(Config{Bytes: 32}, &out, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	line := strings.TrimSpace(out.String())
	value, ok := strings.CutPrefix(line, "QUILL_SESSION_KEY=")
	if !ok {
		t.Fatalf("unexpected output %q", line)
	}
	key, err := auth.ParseSigningKey(value)
	if err != nil {
		t.Fatalf("generated key rejected: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("key length = %d", len(key))
	}
}

func TestRunDeterministicReader(t *testing.T) {
	var out bytes.Buffer
	if err := Run(Config{Bytes: 32}, &out, strings.NewReader(strings.Repeat("a", 32))); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), strings.Repeat("61", 32)) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunRejectsShortKeys(t *testing.T) {
	var out bytes.Buffer
	if err := Run(Config{Bytes: 16}, &out, nil); err == nil {
		t.Fatal("expected error for short key")
	}
}
