// ABOUTME: This file reads coupon candidates from an RSS/Atom deal feed
// ABOUTME: Complements the search sources for feeds that publish deals directly
package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"coupon-herald/models"
)

// FeedSource pulls deals from one RSS or Atom feed.
type FeedSource struct {
	feedURL string
	parser  *gofeed.Parser
}

// NewFeedSource creates a source for one feed URL.
func NewFeedSource(feedURL string, timeout time.Duration) *FeedSource {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "coupon-herald/1.0"

	return &FeedSource{feedURL: feedURL, parser: parser}
}

// Name returns the feed URL.
func (s *FeedSource) Name() string {
	return s.feedURL
}

// Fetch parses the feed and maps items to coupon candidates, capped at the
// same per-source limit as the search sources.
func (s *FeedSource) Fetch(ctx context.Context) ([]models.Coupon, error) {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feedURL, err)
	}

	coupons := make([]models.Coupon, 0, resultsPerSite)
	for _, item := range feed.Items {
		if len(coupons) >= resultsPerSite {
			break
		}
		if item.Title == "" || item.Link == "" {
			continue
		}

		coupons = append(coupons, models.Coupon{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			ImageURL:    feedItemImage(item),
			Source:      s.feedURL,
		})
	}

	return coupons, nil
}

func feedItemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
