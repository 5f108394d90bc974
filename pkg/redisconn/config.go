package redisconn

import (
	"os"
	"strconv"
	"time"
)

// Config holds the immutable connection parameters for the backing Redis.
// It is supplied once at guard construction and never mutated.
type Config struct {
	// Addr is the host:port of the server.
	Addr string

	Username string
	Password string

	// DB is the logical database to select.
	DB int

	// Timeouts for dialing and per-command reads/writes. Zero values fall
	// back to the client library's defaults.
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ConfigFromEnv builds a Config from REDIS_ADDR, REDIS_USERNAME,
// REDIS_PASSWORD and REDIS_DB.
func ConfigFromEnv() Config {
	db, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))

	return Config{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
