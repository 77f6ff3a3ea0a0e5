// ABOUTME: This file is the application entry point and shutdown coordinator
// ABOUTME: Wires logging, config, the liveness server, and the supervisor
package bootstrap

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"coupon-herald/config"
	"coupon-herald/logger"
)

// Run initializes everything and drives the supervisor until a shutdown
// signal or a fatal error. A graceful stop returns nil; retry exhaustion and
// startup validation failures return an error for a non-zero exit.
func Run() error {
	// Best effort, matching local development setups; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	log := logger.Init(logger.LoadConfigFromEnv())

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration invalid", "error", err)
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting coupon herald",
		"channel", cfg.Telegram.ChannelUsername,
		"post_interval", cfg.Schedule.PostInterval,
		"reconnect_delay", cfg.Schedule.ReconnectDelay,
		"max_retries", cfg.Schedule.MaxRetries,
		"sites", cfg.Search.Sites,
		"deal_feeds", len(cfg.Search.DealFeeds))

	deps := BuildDependencies(cfg, log)

	e := NewLivenessServer()
	StartLivenessServer(e, cfg.Server.Port, log)

	runErr := deps.Supervisor.Run(ctx)

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("liveness server shutdown failed", "error", err)
	}

	if runErr != nil {
		log.Error("supervisor terminated", "error", runErr)
		return runErr
	}

	log.Info("stopped cleanly")
	return nil
}
