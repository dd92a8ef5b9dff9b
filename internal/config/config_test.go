package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromAppliesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected default port: %s", cfg.Server.Port)
	}
	if cfg.Console.PageSize != 10 {
		t.Fatalf("unexpected default page size: %d", cfg.Console.PageSize)
	}
	if cfg.Console.SearchDebounce() != 500*time.Millisecond {
		t.Fatalf("unexpected debounce: %v", cfg.Console.SearchDebounce())
	}
	if cfg.Console.RequestTimeout() != 0 {
		t.Fatalf("request timeout should default to none")
	}
}

func TestLoadFromReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(`
server:
  port: "9100"
database:
  driver: postgres
console:
  base_url: http://admin.local
  session_backend: redis
  search_debounce_ms: 200
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:9100" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("unexpected driver: %s", cfg.Database.Driver)
	}
	if cfg.Console.BaseURL != "http://admin.local" || cfg.Console.SessionBackend != "redis" {
		t.Fatalf("unexpected console config: %+v", cfg.Console)
	}
	if cfg.Console.SearchDebounce() != 200*time.Millisecond {
		t.Fatalf("unexpected debounce: %v", cfg.Console.SearchDebounce())
	}
}
