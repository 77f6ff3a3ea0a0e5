package config

import (
	"errors"
	"fmt"
)

// ErrMissingCredential marks a required credential absent from the
// environment. Startup treats it as fatal.
var ErrMissingCredential = errors.New("missing required credential")

// Validate checks required fields and rejects nonsensical timing values.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("%w: BOT_TOKEN", ErrMissingCredential)
	}
	if c.Telegram.ChannelUsername == "" {
		return fmt.Errorf("%w: CHANNEL_USERNAME", ErrMissingCredential)
	}

	if c.Schedule.PostInterval <= 0 {
		return fmt.Errorf("POST_INTERVAL must be positive, got %s", c.Schedule.PostInterval)
	}
	if c.Schedule.ReconnectDelay <= 0 {
		return fmt.Errorf("RECONNECT_DELAY must be positive, got %s", c.Schedule.ReconnectDelay)
	}
	if c.Schedule.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1, got %d", c.Schedule.MaxRetries)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.Server.Port)
	}

	return nil
}
