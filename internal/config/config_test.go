package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("DRAFT_DEBOUNCE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Name != "Pusdatin UMC" {
		t.Fatalf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.App.SSOURL != "https://sso.umc.ac.id" {
		t.Fatalf("unexpected sso url %q", cfg.App.SSOURL)
	}
	if cfg.Draft.Debounce != 2*time.Second {
		t.Fatalf("unexpected debounce %s", cfg.Draft.Debounce)
	}
	if cfg.Storage.Enabled() {
		t.Fatal("storage should be disabled without credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ESCALATION_INTERVAL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://pusdatin.umc.ac.id, https://helpdesk.umc.ac.id")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:9090" {
		t.Fatalf("unexpected addr %s", cfg.App.Addr())
	}
	if cfg.Escalation.Interval != 30*time.Second {
		t.Fatalf("unexpected interval %s", cfg.Escalation.Interval)
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[1] != "https://helpdesk.umc.ac.id" {
		t.Fatalf("unexpected origins %v", cfg.App.CORSOrigins)
	}
	if cfg.Postgres.RunMigrations {
		t.Fatal("migrations should be disabled")
	}
	if cfg.Auth.AccessTokenTTL() != 15*time.Minute {
		t.Fatalf("unexpected ttl %s", cfg.Auth.AccessTokenTTL())
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "nope")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "abc")
	t.Setenv("MINIO_USE_SSL", "maybe")
	t.Setenv("DRAFT_TTL", "forever")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.App.RequestTimeout())
	}
	if cfg.Storage.UseSSL {
		t.Fatal("invalid bool should fall back to false")
	}
	if cfg.Draft.TTL != 0 {
		t.Fatalf("invalid duration should fall back to 0, got %s", cfg.Draft.TTL)
	}
}
