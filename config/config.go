package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the service.
type Config struct {
	Port          string
	DatabaseFile  string
	MigrationsDir string

	CacheType     string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration

	// AtomicTaskSaves wraps a task upsert and its category-link replacement
	// in a single transaction. Off reproduces the legacy two-statement
	// behavior, which can strand links if the second write never runs.
	AtomicTaskSaves bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Port:            envOr("PORT", "8080"),
		DatabaseFile:    envOr("DATABASE_FILE", "./todo_service.db"),
		MigrationsDir:   envOr("MIGRATIONS_DIR", "./database/migrations"),
		CacheType:       envOr("CACHE_TYPE", "memory"),
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		SessionTTL:      time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		AtomicTaskSaves: envBool("ATOMIC_TASK_SAVES", true),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
