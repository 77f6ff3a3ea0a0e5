// ABOUTME: This file shortens coupon links through the ShrinkMe API
// ABOUTME: Every failure mode falls back to the original URL unchanged
package artifact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"coupon-herald/config"
)

const shrinkmeEndpoint = "https://shrinkme.io/api"

// URLShortener shortens a link for the caption. Implementations never fail:
// on any error the original URL comes back verbatim.
type URLShortener interface {
	Shorten(ctx context.Context, rawURL string) string
}

// Shortener is the ShrinkMe-backed URLShortener.
type Shortener struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewShortener creates a shortener. An empty API key disables it.
func NewShortener(cfg config.ShortenerConfig, logger *slog.Logger) *Shortener {
	return &Shortener{
		apiKey:   cfg.APIKey,
		endpoint: shrinkmeEndpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

type shrinkmeResponse struct {
	Status       string `json:"status"`
	ShortenedURL string `json:"shortenedUrl"`
	Message      string `json:"message"`
}

// Shorten returns the shortened URL, or rawURL on any failure.
func (s *Shortener) Shorten(ctx context.Context, rawURL string) string {
	if s.apiKey == "" {
		return rawURL
	}

	params := url.Values{}
	params.Set("api", s.apiKey)
	params.Set("url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		s.logger.Warn("shortener request build failed", "url", rawURL, "error", err)
		return rawURL
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("shortener call failed", "url", rawURL, "error", err)
		return rawURL
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("shortener returned bad status", "url", rawURL, "status", resp.StatusCode)
		return rawURL
	}

	var payload shrinkmeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.Warn("shortener response unreadable", "url", rawURL, "error", err)
		return rawURL
	}

	if payload.Status != "success" || payload.ShortenedURL == "" {
		s.logger.Warn("shortener rejected url", "url", rawURL, "message", payload.Message)
		return rawURL
	}

	return payload.ShortenedURL
}
