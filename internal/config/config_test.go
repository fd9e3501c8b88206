package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Expected default DB port 5432, got %s", cfg.Database.Port)
	}
	if cfg.App.Env != "development" {
		t.Errorf("Expected default env development, got %s", cfg.App.Env)
	}
	if cfg.JWT.Expiration != 168*time.Hour {
		t.Errorf("Expected default JWT expiration 168h, got %s", cfg.JWT.Expiration)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Expected 50 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.RateLimit.Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}

func TestValidateMissingSecret(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing JWT_SECRET")
	}
}

func TestValidateJWTLikeSecret(t *testing.T) {
	cfg := &Config{
		JWT: JWTConfig{Secret: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.payload.sig"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for JWT-like secret")
	}
	if !strings.Contains(err.Error(), "JWT token") {
		t.Errorf("Expected JWT token hint in error, got: %v", err)
	}
}

func TestValidateProductionRequiresDBPassword(t *testing.T) {
	cfg := &Config{
		JWT: JWTConfig{Secret: "real-secret"},
		App: AppConfig{Env: "production"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing DB password in production")
	}
}
