package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	APIBaseURL      string   `mapstructure:"API_BASE_URL"`
	RedisURL        string   `mapstructure:"REDIS_URL"`
	SessionTTLHours int      `mapstructure:"SESSION_TTL_HOURS"`
	CookieSecure    bool     `mapstructure:"COOKIE_SECURE"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	GatewayTimeout  int      `mapstructure:"GATEWAY_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8090")
	v.SetDefault("ENV", "development")
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("GATEWAY_TIMEOUT_SECONDS", 10)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("REDIS_URL")
	v.BindEnv("SESSION_TTL_HOURS")
	v.BindEnv("COOKIE_SECURE")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("GATEWAY_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	if cfg.IsDev() && cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not set; sessions are held in memory and do not survive a restart.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the console is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Validate checks that the configuration is safe to run. Production requires
// a shared session store and secure cookies; in-memory sessions are a
// development convenience only.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", c.APIBaseURL)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT_SECONDS must be positive, got %d", c.GatewayTimeout)
	}
	if c.IsProduction() {
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required in production")
		}
		if !c.CookieSecure {
			return fmt.Errorf("COOKIE_SECURE must be true in production")
		}
	}
	return nil
}
