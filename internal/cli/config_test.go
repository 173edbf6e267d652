package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cache.Backend != cacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendFile)
	}
	if time.Duration(cfg.Cache.TTL) != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", time.Duration(cfg.Cache.TTL))
	}
	if cfg.Render.KrokiURL == "" {
		t.Error("Render.KrokiURL should have a default")
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	// Missing file falls back to defaults
	if cfg.Cache.Backend != cacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendFile)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
remote = true
kroki_url = "http://localhost:8000"

[cache]
backend = "redis"
ttl = "1h"
redis_addr = "redis.internal:6379"

[serve]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if !cfg.Render.Remote {
		t.Error("Render.Remote should be true")
	}
	if cfg.Render.KrokiURL != "http://localhost:8000" {
		t.Errorf("Render.KrokiURL = %q", cfg.Render.KrokiURL)
	}
	if cfg.Cache.Backend != cacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if time.Duration(cfg.Cache.TTL) != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", time.Duration(cfg.Cache.TTL))
	}
	if cfg.Cache.RedisAddr != "redis.internal:6379" {
		t.Errorf("Cache.RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q, want :9090", cfg.Serve.Addr)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[serve]\naddr = \":3000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	// Unset sections keep their defaults
	if cfg.Serve.Addr != ":3000" {
		t.Errorf("Serve.Addr = %q, want :3000", cfg.Serve.Addr)
	}
	if cfg.Cache.Backend != cacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendFile)
	}
}

func TestLoadConfigInvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"memcached\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid backend")
	}
	if !strings.Contains(err.Error(), "invalid cache backend") {
		t.Errorf("err = %v, want invalid cache backend", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml at all ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
