package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	// No JWT_SECRET in the environment: loading still succeeds, so the
	// seed command can run without one. The server enforces the secret
	// itself at startup.
	cfg, err := load(context.Background(), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Auth.JWTSecret != "" {
		t.Fatalf("expected empty secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected default token ttl: %s", cfg.Auth.TokenTTL)
	}
	if cfg.Mongo.Database != "user_management" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":        "9090",
		"JWT_SECRET":  "s3cret",
		"JWT_TTL":     "1h",
		"BCRYPT_COST": "4",
		"REDIS_ADDR":  "redis:6379",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" || cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != time.Hour || cfg.Auth.BcryptCost != 4 {
		t.Fatalf("auth overrides not applied: %+v", cfg.Auth)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("redis override not applied: %+v", cfg.Redis)
	}
}
