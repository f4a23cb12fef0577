// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup parses level and installs it as zerolog's global logger, writing
// structured JSON to stdout.
func Setup(level string) zerolog.Logger {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// Default installs and returns the info-level logger.
func Default() zerolog.Logger {
	return Setup("info")
}
