// Package config
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddress         = "127.0.0.1:8000"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Address         string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = defaultAddress
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat != "json" {
		logFormat = "text"
	}

	shutdown := defaultShutdownTimeout
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			shutdown = parsed
		}
	}

	return &Config{
		Address:         addr,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		ShutdownTimeout: shutdown,
	}
}
