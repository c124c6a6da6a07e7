package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	LogLevel      string
	DB            DatabaseConfig
	Leaderboard   LeaderboardConfig
}

// DatabaseConfig holds connection pool settings
type DatabaseConfig struct {
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

type LeaderboardConfig struct {
	Window    time.Duration
	Limit     int
	CacheTTL  time.Duration
	CacheSize int
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=karmaboard port=5432 sslmode=disable TimeZone=UTC"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DB: DatabaseConfig{
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Leaderboard: LeaderboardConfig{
			Window:    getEnvAsDuration("LEADERBOARD_WINDOW", 24*time.Hour),
			Limit:     getEnvAsInt("LEADERBOARD_LIMIT", 5),
			CacheTTL:  getEnvAsDuration("LEADERBOARD_CACHE_TTL", 30*time.Second),
			CacheSize: getEnvAsInt("CACHE_SIZE", 500),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
