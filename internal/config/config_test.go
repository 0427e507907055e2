package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":50051" {
		t.Fatalf("server address = %q, want :50051", cfg.Server.Address)
	}
	if cfg.Server.MetricsAddress != ":2112" {
		t.Fatalf("metrics address = %q, want :2112", cfg.Server.MetricsAddress)
	}
	if cfg.Cache.DedupTTL != 30*time.Second {
		t.Fatalf("dedup ttl = %v, want 30s", cfg.Cache.DedupTTL)
	}
	if cfg.History.MaxEntries != 512 {
		t.Fatalf("history max entries = %d, want 512", cfg.History.MaxEntries)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  address: ":6001"
  gracefulTimeout: 3s
logging:
  level: debug
  json: true
collector:
  endpoint: "http://collector:8080"
  apiKey: "secret"
cache:
  valkey: true
  addr: "valkey:6379"
  dedupTTL: 45s
history:
  maxEntries: 64
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":6001" {
		t.Fatalf("server address = %q", cfg.Server.Address)
	}
	if cfg.Server.GracefulTimeout != 3*time.Second {
		t.Fatalf("graceful timeout = %v", cfg.Server.GracefulTimeout)
	}
	if !cfg.Logging.JSON || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Collector.Endpoint != "http://collector:8080" || cfg.Collector.APIKey != "secret" {
		t.Fatalf("collector = %+v", cfg.Collector)
	}
	if !cfg.Cache.Valkey || cfg.Cache.Addr != "valkey:6379" {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.DedupTTL != 45*time.Second {
		t.Fatalf("dedup ttl = %v", cfg.Cache.DedupTTL)
	}
	if cfg.History.MaxEntries != 64 {
		t.Fatalf("history max entries = %d", cfg.History.MaxEntries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TLSTRIAGE_SERVER_ADDRESS", ":7001")
	t.Setenv("TLSTRIAGE_LOG_FORMAT", "json")
	t.Setenv("TLSTRIAGE_DEDUP_TTL", "2m")
	t.Setenv("TLSTRIAGE_CACHE_VALKEY", "true")
	t.Setenv("TLSTRIAGE_CACHE_ADDR", "cache:6379")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != ":7001" {
		t.Fatalf("server address = %q", cfg.Server.Address)
	}
	if !cfg.Logging.JSON {
		t.Fatal("expected json logging")
	}
	if cfg.Cache.DedupTTL != 2*time.Minute {
		t.Fatalf("dedup ttl = %v", cfg.Cache.DedupTTL)
	}
	if !cfg.Cache.Valkey || cfg.Cache.Addr != "cache:6379" {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
}
