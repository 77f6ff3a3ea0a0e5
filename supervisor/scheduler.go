// ABOUTME: This file runs one publish cycle: gather, dedup, produce, publish
// ABOUTME: Exactly one coupon goes out per cycle; the rest wait for the next
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"coupon-herald/dedup"
	"coupon-herald/models"
)

// SourceGatherer discovers candidate coupons. It never fails; an empty batch
// is its worst case.
type SourceGatherer interface {
	Gather(ctx context.Context) []models.Coupon
}

// CaptionProducer composes the caption and fills the artifact slot. Whether
// a file exists at ArtifactPath afterwards is the only image signal.
type CaptionProducer interface {
	Produce(ctx context.Context, c models.Coupon) string
	ArtifactPath() string
}

// Session is the live channel handle handed down by the supervisor.
type Session interface {
	SendText(text string) error
	SendPhoto(path, caption string) error
}

// Scheduler owns the publish pipeline and the posted-title history. It is
// driven strictly sequentially by the supervisor; there is never more than
// one cycle in flight.
type Scheduler struct {
	gatherer SourceGatherer
	history  *dedup.History
	producer CaptionProducer
	logger   *slog.Logger
}

// NewScheduler creates a scheduler.
func NewScheduler(gatherer SourceGatherer, history *dedup.History, producer CaptionProducer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		gatherer: gatherer,
		history:  history,
		producer: producer,
		logger:   logger,
	}
}

// PostCycle performs one full publish attempt. Finding nothing is a normal
// outcome, not an error; only a failed publish makes the cycle fail. On
// success the posted title is recorded in the history.
func (s *Scheduler) PostCycle(ctx context.Context, sess Session) error {
	log := s.logger.With("cycle_id", uuid.NewString())
	log.Info("cycle started")

	batch := s.gatherer.Gather(ctx)
	if len(batch) == 0 {
		log.Info("no coupons found")
		return nil
	}

	fresh := s.history.FilterNew(batch)
	coupon := fresh[0]
	caption := s.producer.Produce(ctx, coupon)

	if err := s.publish(sess, coupon, caption, log); err != nil {
		return err
	}

	s.history.Record(coupon.Title)
	log.Info("cycle finished", "posted_total", s.history.Len())

	return nil
}

// publish sends caption+image when the artifact slot is filled, and plain
// text otherwise. The slot is checked on disk rather than trusting producer
// return values, since either image path may fail silently.
func (s *Scheduler) publish(sess Session, coupon models.Coupon, caption string, log *slog.Logger) error {
	artifactPath := s.producer.ArtifactPath()

	if _, err := os.Stat(artifactPath); err == nil {
		if err := sess.SendPhoto(artifactPath, caption); err != nil {
			return fmt.Errorf("publish photo for %q from %s: %w", coupon.Title, coupon.Source, err)
		}
		log.Info("posted with image", "source", coupon.Source, "title", coupon.Title)
		return nil
	}

	if err := sess.SendText(caption); err != nil {
		return fmt.Errorf("publish text for %q from %s: %w", coupon.Title, coupon.Source, err)
	}
	log.Info("posted without image", "source", coupon.Source, "title", coupon.Title)

	return nil
}
