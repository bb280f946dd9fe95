package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "DB_HOST", "MONGO_URI", "SEND_BUFFER", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	// t.Setenv cannot unset, so an empty value is what these tests see as unset.
	cfg := LoadConfig()
	if cfg.PostgresEnabled() || cfg.MongoEnabled() {
		t.Fatalf("stores should be disabled without DB_HOST and MONGO_URI")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("SEND_BUFFER", "32")
	t.Setenv("RECORDER_QUEUE", "not-a-number")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "cat")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "arena")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg := LoadConfig()
	if cfg.ServerAddr != ":9000" || cfg.SendBuffer != 32 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.RecorderQueue != 64 {
		t.Fatalf("bad RECORDER_QUEUE should fall back to 64, got %d", cfg.RecorderQueue)
	}
	if !cfg.PostgresEnabled() || !cfg.MongoEnabled() {
		t.Fatalf("both stores should be enabled")
	}
	dsn := cfg.PostgresDSN()
	for _, part := range []string{"host=db", "port=6543", "user=cat", "password=secret", "dbname=arena"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
