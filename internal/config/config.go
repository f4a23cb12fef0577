// Package config provides process-wide defaults for the proof engine,
// env-var driven.
package config

import (
	"os"
	"strconv"
)

// Config holds process-wide engine defaults. internal/application/proof's
// DefaultOptions does not read it; the CLI applies its values over
// DefaultOptions and to the root logger.
type Config struct {
	DefaultLogic   string
	MaxSteps       int
	BuildTimeoutMs int64
	LogLevel       string
}

// Load reads Config from the environment, falling back to the engine's
// built-in defaults for anything unset.
func Load() *Config {
	return &Config{
		DefaultLogic:   getEnv("TABLEAUX_DEFAULT_LOGIC", "CPL"),
		MaxSteps:       getEnvInt("TABLEAUX_MAX_STEPS", 10_000),
		BuildTimeoutMs: getEnvInt64("TABLEAUX_BUILD_TIMEOUT_MS", 30_000),
		LogLevel:       getEnv("TABLEAUX_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
