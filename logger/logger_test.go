package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		input string
		want  slog.Level
	}{
		"debug":              {input: "debug", want: slog.LevelDebug},
		"info":               {input: "info", want: slog.LevelInfo},
		"warn":               {input: "warn", want: slog.LevelWarn},
		"warning alias":      {input: "warning", want: slog.LevelWarn},
		"error":              {input: "error", want: slog.LevelError},
		"mixed case":         {input: "DEBUG", want: slog.LevelDebug},
		"unknown falls back": {input: "verbose", want: slog.LevelInfo},
		"empty falls back":   {input: "", want: slog.LevelInfo},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.input))
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")

		cfg := LoadConfigFromEnv()
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
	})
}
