// ABOUTME: This file initializes the process-wide slog logger from environment
// ABOUTME: Supports json/text handlers and the usual level names
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// LoadConfigFromEnv reads LOG_LEVEL and LOG_FORMAT with sane defaults.
func LoadConfigFromEnv() Config {
	cfg := Config{Level: "info", Format: "json"}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	return cfg
}

// Logger is the package-level logger. Init replaces it; callers that were
// wired before Init keep whatever they captured, so Init must run first.
var Logger = slog.Default()

// Init builds the service logger and installs it as the package default.
func Init(cfg Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, options)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, options)
	}

	log := slog.New(handler).With("service", "coupon-herald")
	Logger = log
	slog.SetDefault(log)

	return log
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
