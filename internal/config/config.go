package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds service configuration
type Config struct {
	Port                int
	DatabaseDSN         string
	RedisURL            string // empty disables the game-log cache
	CORSOrigins         []string
	ConfidenceThreshold float64
}

// Load loads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Port:                getEnvInt("LINEUP_ENGINE_PORT", 8087),
		DatabaseDSN:         getEnv("DATABASE_URL", "postgres://localhost:5432/courtsignal?sslmode=disable"),
		RedisURL:            getEnv("REDIS_URL", ""),
		CORSOrigins:         getEnvStringSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.6),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
