// Package logging wires log/slog for the medinfo service: a process-wide
// structured logger plus package-level helpers so callers do not need to
// carry a logger around.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Service holds the configured logger instance.
type Service struct {
	Logger *slog.Logger
}

// Default is the process-wide logging service. It is set by Init and read
// by the package-level helpers.
var Default *Service

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error") and installs it as the slog default.
func Init(level string) {
	Default = &Service{Logger: New(level)}
	slog.SetDefault(Default.Logger)
}

// New builds a text logger writing to stdout at the given level.
func New(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logger returns the configured logger, falling back to a stderr text
// logger when Init has not run (early startup, tests).
func logger() *slog.Logger {
	if Default != nil && Default.Logger != nil {
		return Default.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Package-level helpers mirroring the slog signatures.

func Debug(msg string, args ...any) { logger().Debug(msg, args...) }

func Info(msg string, args ...any) { logger().Info(msg, args...) }

func Warn(msg string, args ...any) { logger().Warn(msg, args...) }

func Error(msg string, args ...any) { logger().Error(msg, args...) }
