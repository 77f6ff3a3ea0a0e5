package search

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"coupon-herald/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

type fakeSource struct {
	name    string
	coupons []models.Coupon
	err     error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context) ([]models.Coupon, error) {
	return f.coupons, f.err
}

func TestAggregator_Gather(t *testing.T) {
	tests := map[string]struct {
		sources    []Source
		wantTitles []string
	}{
		"combines all sources": {
			sources: []Source{
				&fakeSource{name: "a.com", coupons: []models.Coupon{{Title: "A1"}, {Title: "A2"}}},
				&fakeSource{name: "b.com", coupons: []models.Coupon{{Title: "B1"}}},
			},
			wantTitles: []string{"A1", "A2", "B1"},
		},
		"failing source contributes nothing": {
			sources: []Source{
				&fakeSource{name: "a.com", coupons: []models.Coupon{{Title: "A1"}}},
				&fakeSource{name: "down.com", err: errors.New("connection refused")},
				&fakeSource{name: "b.com", coupons: []models.Coupon{{Title: "B1"}}},
			},
			wantTitles: []string{"A1", "B1"},
		},
		"all sources failing yields empty batch": {
			sources: []Source{
				&fakeSource{name: "down.com", err: errors.New("boom")},
			},
			wantTitles: nil,
		},
		"no sources yields empty batch": {
			sources:    nil,
			wantTitles: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewAggregator(tc.sources, testLogger())

			got := a.Gather(context.Background())

			var titles []string
			for _, c := range got {
				titles = append(titles, c.Title)
			}
			// The batch is shuffled, so compare as sets.
			assert.ElementsMatch(t, tc.wantTitles, titles)
		})
	}
}
