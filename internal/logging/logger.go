// Package logging provides structured logging for goweave, wrapping
// charmbracelet/log. The CLI owns the shared logger; library packages
// pick a logger out of the context so hosts can inject their own.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Shared process logger is intentional
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a logger writing to stderr at the given level. Unknown
// level strings fall back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// parseLevel maps a level name to a log.Level, defaulting to info.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared process logger.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetLevel adjusts the shared logger's level.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
