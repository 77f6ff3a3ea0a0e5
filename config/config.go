// ABOUTME: This file loads all service configuration from environment variables
// ABOUTME: Defines defaults, typed getEnv helpers, and the full config surface
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all configuration sections.
type Config struct {
	Telegram  TelegramConfig
	Search    SearchConfig
	Shortener ShortenerConfig
	Artifact  ArtifactConfig
	Schedule  ScheduleConfig
	Server    ServerConfig
}

// TelegramConfig holds the channel credentials and transport bounds.
type TelegramConfig struct {
	BotToken        string
	ChannelUsername string
	RequestTimeout  time.Duration
}

// SearchConfig holds the coupon discovery sources.
type SearchConfig struct {
	GoogleAPIKey string
	GoogleCX     string
	Sites        []string // sites queried through Google Custom Search
	DealFeeds    []string // optional RSS deal feeds
	HTTPTimeout  time.Duration
}

// ShortenerConfig holds the ShrinkMe credentials. An empty APIKey disables
// shortening entirely; links pass through unchanged.
type ShortenerConfig struct {
	APIKey  string
	Timeout time.Duration
}

// ArtifactConfig holds the card image settings.
type ArtifactConfig struct {
	Path            string
	FontPath        string
	DownloadTimeout time.Duration
}

// ScheduleConfig holds the cycle and retry timing.
type ScheduleConfig struct {
	PostInterval   time.Duration
	ReconnectDelay time.Duration
	MaxRetries     int
}

// ServerConfig holds the liveness HTTP server settings.
type ServerConfig struct {
	Port int
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:        os.Getenv("BOT_TOKEN"),
			ChannelUsername: os.Getenv("CHANNEL_USERNAME"),
			RequestTimeout:  getEnvDuration("TELEGRAM_TIMEOUT", 30*time.Second),
		},
		Search: SearchConfig{
			GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
			GoogleCX:     os.Getenv("GOOGLE_CX"),
			Sites: getEnvStringSlice("COUPON_SITES", []string{
				"cuponomia.com",
				"meliuz.com.br",
				"pelando.com.br",
			}),
			DealFeeds:   getEnvStringSlice("DEAL_FEEDS", nil),
			HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		},
		Shortener: ShortenerConfig{
			APIKey:  os.Getenv("SHRINKME_API"),
			Timeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		},
		Artifact: ArtifactConfig{
			Path:            getEnvString("ARTIFACT_PATH", "coupon.png"),
			FontPath:        getEnvString("FONT_PATH", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
			DownloadTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		},
		Schedule: ScheduleConfig{
			PostInterval:   getEnvDuration("POST_INTERVAL", 6*time.Hour),
			ReconnectDelay: getEnvDuration("RECONNECT_DELAY", 60*time.Second),
			MaxRetries:     getEnvInt("MAX_RETRIES", 5),
		},
		Server: ServerConfig{
			Port: getEnvInt("HTTP_PORT", 8080),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
