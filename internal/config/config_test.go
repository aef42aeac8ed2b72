package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_RequiresAPIBaseURL(t *testing.T) {
	os.Unsetenv("API_BASE_URL")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when API_BASE_URL is missing")
	}
}

func TestLoad_WithAPIBaseURL(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://localhost:8080/api")
	defer os.Unsetenv("API_BASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("expected API_BASE_URL to be set, got %s", cfg.APIBaseURL)
	}

	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %s", cfg.Port)
	}

	if cfg.SessionTTLHours != 12 {
		t.Errorf("expected default session TTL 12h, got %d", cfg.SessionTTLHours)
	}

	if cfg.GatewayTimeout != 10 {
		t.Errorf("expected default gateway timeout 10s, got %d", cfg.GatewayTimeout)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_SessionTTL(t *testing.T) {
	c := &Config{SessionTTLHours: 8}
	if c.SessionTTL() != 8*time.Hour {
		t.Errorf("expected 8h, got %v", c.SessionTTL())
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Env:             "development",
		APIBaseURL:      "http://localhost:8080/api",
		SessionTTLHours: 12,
		GatewayTimeout:  10,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("base config should validate: %v", err)
	}

	c := base
	c.APIBaseURL = "localhost:8080"
	if err := c.Validate(); err == nil {
		t.Error("expected error for non-http API_BASE_URL")
	}

	c = base
	c.SessionTTLHours = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for zero session TTL")
	}

	c = base
	c.Env = "production"
	if err := c.Validate(); err == nil {
		t.Error("production without redis must not validate")
	}

	c = base
	c.Env = "production"
	c.RedisURL = "redis://localhost:6379"
	c.CookieSecure = true
	if err := c.Validate(); err != nil {
		t.Errorf("production config should validate: %v", err)
	}
}
