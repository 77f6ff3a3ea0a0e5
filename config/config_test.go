// ABOUTME: This file tests configuration loading and validation
// ABOUTME: Covers defaults, overrides, required credentials, and bad values
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("CHANNEL_USERNAME", "@deals")
}

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		"default values": {
			envVars: map[string]string{},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, 6*time.Hour, c.Schedule.PostInterval)
				assert.Equal(t, 60*time.Second, c.Schedule.ReconnectDelay)
				assert.Equal(t, 5, c.Schedule.MaxRetries)
				assert.Equal(t, 8080, c.Server.Port)
				assert.Equal(t, 10*time.Second, c.Search.HTTPTimeout)
				assert.Equal(t, 30*time.Second, c.Telegram.RequestTimeout)
				assert.Equal(t, []string{"cuponomia.com", "meliuz.com.br", "pelando.com.br"}, c.Search.Sites)
				assert.Empty(t, c.Search.DealFeeds)
				assert.Equal(t, "coupon.png", c.Artifact.Path)
			},
		},
		"custom values": {
			envVars: map[string]string{
				"POST_INTERVAL":   "1h",
				"RECONNECT_DELAY": "5s",
				"MAX_RETRIES":     "3",
				"HTTP_PORT":       "9090",
				"COUPON_SITES":    "a.com, b.com",
				"DEAL_FEEDS":      "https://deals.example.com/rss",
				"ARTIFACT_PATH":   "/tmp/card.png",
			},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, time.Hour, c.Schedule.PostInterval)
				assert.Equal(t, 5*time.Second, c.Schedule.ReconnectDelay)
				assert.Equal(t, 3, c.Schedule.MaxRetries)
				assert.Equal(t, 9090, c.Server.Port)
				assert.Equal(t, []string{"a.com", "b.com"}, c.Search.Sites)
				assert.Equal(t, []string{"https://deals.example.com/rss"}, c.Search.DealFeeds)
				assert.Equal(t, "/tmp/card.png", c.Artifact.Path)
			},
		},
		"invalid duration falls back to default": {
			envVars: map[string]string{"POST_INTERVAL": "six hours"},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, 6*time.Hour, c.Schedule.PostInterval)
			},
		},
		"invalid int falls back to default": {
			envVars: map[string]string{"MAX_RETRIES": "many"},
			validate: func(t *testing.T, c *Config) {
				assert.Equal(t, 5, c.Schedule.MaxRetries)
			},
		},
		"zero reconnect delay rejected": {
			envVars:     map[string]string{"RECONNECT_DELAY": "0s"},
			expectError: true,
		},
		"negative retries rejected": {
			envVars:     map[string]string{"MAX_RETRIES": "-1"},
			expectError: true,
		},
		"port out of range rejected": {
			envVars:     map[string]string{"HTTP_PORT": "70000"},
			expectError: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tc.validate(t, cfg)
		})
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Run("missing bot token", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("CHANNEL_USERNAME", "@deals")

		_, err := Load()
		require.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("missing channel", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "test-token")
		t.Setenv("CHANNEL_USERNAME", "")

		_, err := Load()
		require.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "CHANNEL_USERNAME")
	})
}
