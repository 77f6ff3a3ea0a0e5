// ABOUTME: This file implements the tiered reconnect state machine
// ABOUTME: Cycle failures wait in-session; session failures are bounded and fatal when exhausted
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrRetriesExhausted means session establishment failed MaxRetries times in
// a row. The process treats it as fatal.
var ErrRetriesExhausted = errors.New("session retries exhausted")

// Channel establishes channel sessions.
type Channel interface {
	Connect(ctx context.Context) (Session, error)
}

// ChannelFunc adapts a function to the Channel interface.
type ChannelFunc func(ctx context.Context) (Session, error)

// Connect calls f.
func (f ChannelFunc) Connect(ctx context.Context) (Session, error) { return f(ctx) }

// Cycler runs one publish cycle against a session.
type Cycler interface {
	PostCycle(ctx context.Context, sess Session) error
}

// Config holds the supervisor timing and bounds.
type Config struct {
	PostInterval   time.Duration
	ReconnectDelay time.Duration
	// MaxRetries bounds consecutive session-establishment failures; reaching
	// it terminates the process.
	MaxRetries int
	// MaxCycleFailures bounds consecutive in-session cycle failures before
	// the session is torn down and rebuilt. Cheap cycle retries should not
	// hammer a session that has actually gone bad. Zero means MaxRetries.
	MaxCycleFailures int
}

// Supervisor owns the session lifecycle and the two retry tiers. A failed
// cycle waits ReconnectDelay and retries inside the same session; only
// repeated cycle failures escalate to a session rebuild, and only repeated
// session failures escalate to termination.
type Supervisor struct {
	cfg     Config
	channel Channel
	cycler  Cycler
	logger  *slog.Logger

	// sessionRetries counts consecutive failed connects. Reset to zero on
	// every successful session establishment, never touched by cycle errors.
	sessionRetries int
}

// New creates a supervisor.
func New(cfg Config, channel Channel, cycler Cycler, logger *slog.Logger) *Supervisor {
	if cfg.MaxCycleFailures <= 0 {
		cfg.MaxCycleFailures = cfg.MaxRetries
	}
	return &Supervisor{
		cfg:     cfg,
		channel: channel,
		cycler:  cycler,
		logger:  logger,
	}
}

// Run drives the state machine until the context is cancelled (returns nil)
// or session retries are exhausted (returns ErrRetriesExhausted). It never
// runs two cycles concurrently.
func (s *Supervisor) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		sess, err := s.channel.Connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			s.sessionRetries++
			s.logger.Error("session establishment failed",
				"attempt", s.sessionRetries, "max_retries", s.cfg.MaxRetries, "error", err)

			if s.sessionRetries >= s.cfg.MaxRetries {
				return fmt.Errorf("%w: %d consecutive failures, last: %v",
					ErrRetriesExhausted, s.sessionRetries, err)
			}

			if !s.wait(ctx, s.cfg.ReconnectDelay) {
				return nil
			}
			continue
		}

		s.sessionRetries = 0
		s.logger.Info("entering cycle loop", "post_interval", s.cfg.PostInterval)

		if !s.runCycles(ctx, sess) {
			return nil
		}
		// Too many consecutive cycle failures: rebuild the session.
		s.logger.Warn("cycle failures exhausted session, reconnecting",
			"failures", s.cfg.MaxCycleFailures)
	}

	return nil
}

// runCycles is the CONNECTED state: one cycle per PostInterval, with failed
// cycles retried after ReconnectDelay inside the same session. Returns false
// when the context ended (shutdown), true when the session should be
// rebuilt.
func (s *Supervisor) runCycles(ctx context.Context, sess Session) bool {
	failures := 0

	for {
		if ctx.Err() != nil {
			return false
		}

		err := s.cycler.PostCycle(ctx, sess)

		var delay time.Duration
		switch {
		case err == nil:
			failures = 0
			delay = s.cfg.PostInterval
			s.logger.Info("cycle complete, waiting", "next_in", delay)
		case errors.Is(err, context.Canceled):
			return false
		default:
			failures++
			if failures >= s.cfg.MaxCycleFailures {
				s.logger.Error("cycle failed repeatedly", "failures", failures, "error", err)
				return true
			}
			delay = s.cfg.ReconnectDelay
			s.logger.Warn("cycle failed, retrying in-session",
				"failures", failures, "retry_in", delay, "error", err)
		}

		if !s.wait(ctx, delay) {
			return false
		}
	}
}

// wait sleeps for d unless the context ends first. Every suspension point in
// the supervisor goes through here so shutdown is observed within one wait.
func (s *Supervisor) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
