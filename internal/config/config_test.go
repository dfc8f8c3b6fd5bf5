package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port == "" {
		t.Fatal("expected default port")
	}
	if cfg.JWTSecret == "" {
		t.Fatal("expected default JWT secret")
	}
	if cfg.TokenTTL <= 0 {
		t.Fatalf("expected positive token TTL, got %v", cfg.TokenTTL)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %v", cfg.TokenTTL)
	}
}

func TestNewConfigInvalidTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for invalid TOKEN_TTL")
	}
}
