// Package logger builds the zerolog logger used across the service.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stdout, tagged with the service name.
// LOG_LEVEL controls verbosity (default info).
func New(service string) zerolog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
