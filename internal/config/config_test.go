package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8000" {
		t.Errorf("Addr = %q, want :8000", cfg.Addr)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q, want *", cfg.CORSOrigin)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadpanda.toml")
	body := `
addr = ":9090"
cors_origin = "https://app.example.com"

[cache]
backend = "redis"
ttl = "90s"

[cache.redis]
addr = "redis.internal:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.CORSOrigin != "https://app.example.com" {
		t.Errorf("CORSOrigin = %q", cfg.CORSOrigin)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.CacheTTL() != 90*time.Second {
		t.Errorf("CacheTTL = %v, want 90s", cfg.CacheTTL())
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadpanda.toml")
	if err := os.WriteFile(path, []byte("adddr = \":9090\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted a misspelled key")
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadpanda.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"mongo\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown cache backend")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEADPANDA_ADDR", ":7000")
	t.Setenv("DEADPANDA_CACHE_BACKEND", "none")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000", cfg.Addr)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
}
