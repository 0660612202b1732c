// Package config loads runtime settings from the environment, with an
// optional .env-style file for local development.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string
	RedisURL    string

	// Identity provider settings. The secret is shared with the provider
	// that mints the HS256 tokens; the issuer is enforced when non-empty.
	IDPJWTSecret string
	IDPIssuer    string

	DefaultPageSize int
	MaxPageSize     int

	RateLimitPerMinute int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// .env is optional; real deployments set everything in the environment.
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		AppEnv:             v.GetString("APP_ENV"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisURL:           v.GetString("REDIS_URL"),
		IDPJWTSecret:       v.GetString("IDP_JWT_SECRET"),
		IDPIssuer:          v.GetString("IDP_ISSUER"),
		DefaultPageSize:    v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:        v.GetInt("MAX_PAGE_SIZE"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.IDPJWTSecret == "" {
		return nil, fmt.Errorf("IDP_JWT_SECRET is required")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
