package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	if cfg.Port != "8080" || cfg.Env != "development" || !cfg.IsDevelopment() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.IdleTimeout != 5*time.Minute || cfg.Session.HiddenThreshold != 3*time.Second {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Mongo.Database != "hotel_pms" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected storage defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.WriteWorkers != 4 || cfg.CacheVersion != "v1" || cfg.Advisor.Timeout != 30*time.Second {
		t.Fatalf("unexpected worker/cache/advisor defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_IDLE_TIMEOUT", "90s")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "owner@hotel.test")

	cfg := Load()

	if cfg.IsDevelopment() {
		t.Fatalf("production must not be development")
	}
	if cfg.Session.IdleTimeout != 90*time.Second {
		t.Fatalf("expected 90s idle timeout, got %v", cfg.Session.IdleTimeout)
	}
	if cfg.BootstrapAdminEmail != "owner@hotel.test" {
		t.Fatalf("unexpected bootstrap email %q", cfg.BootstrapAdminEmail)
	}
}
