package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv loads database configuration from environment variables.
//
// Pool sizing defaults follow the worker count: each transcription worker
// holds a connection across claiming, transcript persistence and settlement,
// and the API handlers plus the sweeper need headroom on top. Explicit
// DB_MAX_OPEN_CONNS / DB_MAX_IDLE_CONNS values win over the derived defaults.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	workers, _ := strconv.Atoi(getEnvOrDefault("WORKER_COUNT", "4"))
	if workers <= 0 {
		workers = 4
	}
	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", strconv.Itoa(workers+6)))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", strconv.Itoa(workers)))

	return Config{
		Host:         getEnvOrDefault("DB_HOST", "localhost"),
		Port:         port,
		User:         getEnvOrDefault("DB_USER", "scribe"),
		Password:     os.Getenv("DB_PASSWORD"),
		Database:     getEnvOrDefault("DB_NAME", "scribe"),
		SSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxIdle,
		// Transcriptions can hold a task for minutes, so connections are
		// recycled on a longer cadence than a pure request/response service.
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
