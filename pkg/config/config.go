package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration values. It is built once at cold start and
// passed by reference into the services that need it.
type Config struct {
	Region        string
	UsersTable    string
	MediaTable    string
	JWTSecret     string
	TokenTTL      time.Duration
	LogLevel      string
	ServerAddress string
}

// New creates a new configuration from environment variables and validates
// it. Missing required values fail here, at cold start, rather than on the
// first request that happens to need them.
func New() (*Config, error) {
	cfg := &Config{
		Region:        getEnv("AWS_REGION", "us-east-1"),
		UsersTable:    os.Getenv("USERS_TABLE_NAME"),
		MediaTable:    os.Getenv("MEDIA_TABLE_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getEnvDuration("TOKEN_TTL", time.Hour),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewAuthorizer creates the reduced configuration the token authorizer
// needs. It still fails fast when the signing secret is absent, because a
// missing secret is a server fault, not a reason to reject requests.
func NewAuthorizer() (*Config, error) {
	cfg := &Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", time.Hour),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.UsersTable == "" {
		return fmt.Errorf("USERS_TABLE_NAME is required")
	}
	if c.MediaTable == "" {
		return fmt.Errorf("MEDIA_TABLE_NAME is required")
	}
	return nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
