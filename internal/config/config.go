// Package config reads the service configuration from the environment.
// Signing secrets are hard requirements: startup fails rather than falling
// back to a built-in value.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", "0.0.0.0:8000"),
		AllowedOrigins:     splitOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		AccessTokenSecret:  os.Getenv("JWT_ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("JWT_REFRESH_TOKEN_SECRET"),
		DBName:             os.Getenv("POSTGRES_DB"),
		DBUser:             os.Getenv("POSTGRES_USER"),
		DBPassword:         os.Getenv("POSTGRES_PASSWORD"),
		DBHost:             envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:             envOrDefault("POSTGRES_PORT", "5432"),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("JWT_ACCESS_TOKEN_SECRET is required")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, errors.New("JWT_REFRESH_TOKEN_SECRET is required")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, errors.New("JWT_ACCESS_TOKEN_SECRET and JWT_REFRESH_TOKEN_SECRET must differ")
	}

	var err error
	cfg.AccessTokenExpiry, err = durationEnv("ACCESS_TOKEN_EXPIRES_IN", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenExpiry, err = durationEnv("REFRESH_TOKEN_EXPIRES_IN", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) DBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
