// ABOUTME: This file builds the dependency graph from config
// ABOUTME: Sources, history, producer, channel client, scheduler, supervisor
package bootstrap

import (
	"context"
	"log/slog"

	"coupon-herald/artifact"
	"coupon-herald/config"
	"coupon-herald/dedup"
	"coupon-herald/search"
	"coupon-herald/supervisor"
	"coupon-herald/telegram"
)

// Dependencies holds everything Run needs after wiring.
type Dependencies struct {
	Supervisor *supervisor.Supervisor
	Logger     *slog.Logger
}

// BuildDependencies wires the full graph. Missing optional credentials
// degrade (fewer sources, no shortening) rather than fail; Validate already
// rejected configs that cannot run at all.
func BuildDependencies(cfg *config.Config, log *slog.Logger) *Dependencies {
	var sources []search.Source

	if cfg.Search.GoogleAPIKey != "" && cfg.Search.GoogleCX != "" {
		for _, site := range cfg.Search.Sites {
			sources = append(sources, search.NewGoogleSource(
				cfg.Search.GoogleAPIKey, cfg.Search.GoogleCX, site, cfg.Search.HTTPTimeout))
		}
	} else {
		log.Warn("google search credentials missing, search sources disabled")
	}

	for _, feedURL := range cfg.Search.DealFeeds {
		sources = append(sources, search.NewFeedSource(feedURL, cfg.Search.HTTPTimeout))
	}

	if len(sources) == 0 {
		log.Warn("no coupon sources configured, cycles will find nothing")
	}

	aggregator := search.NewAggregator(sources, log)
	history := dedup.NewHistory()
	shortener := artifact.NewShortener(cfg.Shortener, log)
	producer := artifact.NewProducer(cfg.Artifact, shortener, log)
	scheduler := supervisor.NewScheduler(aggregator, history, producer, log)

	channelClient := telegram.NewClient(cfg.Telegram, log)
	channel := supervisor.ChannelFunc(func(ctx context.Context) (supervisor.Session, error) {
		return channelClient.Connect(ctx)
	})

	sup := supervisor.New(supervisor.Config{
		PostInterval:   cfg.Schedule.PostInterval,
		ReconnectDelay: cfg.Schedule.ReconnectDelay,
		MaxRetries:     cfg.Schedule.MaxRetries,
	}, channel, scheduler, log)

	return &Dependencies{Supervisor: sup, Logger: log}
}
