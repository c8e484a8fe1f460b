package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	Addr     string
	LogLevel string // debug, info, warn, error

	// APIKey is the single pre-provisioned credential, read once at
	// startup and passed implicitly to all backend calls.
	APIKey string

	// PollInterval is the fixed delay between video status polls.
	PollInterval time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Addr:         getEnvOrDefault("STUDIO_ADDR", ":8080"),
		LogLevel:     getEnvOrDefault("STUDIO_LOG_LEVEL", "info"),
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		PollInterval: getEnvDurationOrDefault("STUDIO_POLL_INTERVAL", 10*time.Second),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("STUDIO_POLL_INTERVAL must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
