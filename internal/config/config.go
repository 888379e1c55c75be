package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port                 string
	AllowedOrigins       []string
	LogLevel             string
	DatabaseURL          string
	RedisURL             string
	Environment          string
	CampaignTimezone     string
	CampaignTitle        string
	DefaultRegistrantCap int
	DefaultAdminPassword string
	QueryTimeout         time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		Environment:          getEnv("ENVIRONMENT", "production"),
		CampaignTimezone:     getEnv("CAMPAIGN_TIMEZONE", "America/Manaus"),
		CampaignTitle:        getEnv("CAMPAIGN_TITLE", "Promoção"),
		DefaultRegistrantCap: getIntEnv("DEFAULT_REGISTRANT_CAP", 1000),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin"),
		QueryTimeout:         getDurationEnv("QUERY_TIMEOUT", 5*time.Second),
	}

	return cfg, nil
}

// Location resolves the campaign timezone. Every deadline comparison and
// redemption timestamp uses this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.CampaignTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid campaign timezone %q: %w", c.CampaignTimezone, err)
	}
	return loc, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
