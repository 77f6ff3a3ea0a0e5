// ABOUTME: This file aggregates coupon candidates from all configured sources
// ABOUTME: Per-source failures are absorbed; the combined batch is shuffled
package search

import (
	"context"
	"log/slog"
	"math/rand"

	"coupon-herald/models"
)

// Source yields candidate coupons from one upstream. Implementations return
// errors; the aggregator is the layer that absorbs them.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Coupon, error)
}

// Aggregator queries every source in order and returns the shuffled union.
type Aggregator struct {
	sources []Source
	logger  *slog.Logger
}

// NewAggregator creates an aggregator over the given sources.
func NewAggregator(sources []Source, logger *slog.Logger) *Aggregator {
	return &Aggregator{sources: sources, logger: logger}
}

// Gather queries all sources. A failing source contributes zero candidates
// and is logged; Gather itself never fails. Worst case it returns an empty
// batch.
func (a *Aggregator) Gather(ctx context.Context) []models.Coupon {
	var all []models.Coupon

	for _, src := range a.sources {
		coupons, err := src.Fetch(ctx)
		if err != nil {
			a.logger.Warn("source fetch failed", "source", src.Name(), "error", err)
			continue
		}
		a.logger.Info("source fetched", "source", src.Name(), "count", len(coupons))
		all = append(all, coupons...)
	}

	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	a.logger.Info("gather complete", "total", len(all), "sources", len(a.sources))
	return all
}
