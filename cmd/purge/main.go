// Command purge hard-deletes summaries that the API already hides: rows
// older than the retention period owned by users with auto-delete on.
// Run it from an external scheduler; the server never purges by itself.
//
// Usage:
//
//	purge [--retention-days=N]
//
// Without the flag, history.purge_retention_days from the config is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/clearcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clearcare-backend/internal/adapter/postgres/summary"
	"github.com/heartmarshall/clearcare-backend/internal/app"
	"github.com/heartmarshall/clearcare-backend/internal/config"
)

const purgeTimeout = 5 * time.Minute

func main() {
	days := flag.Int("retention-days", 0, "override history.purge_retention_days")
	flag.Parse()

	cfg, err := config.LoadForStorage()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	retention := cfg.History.PurgeRetentionDays
	if *days != 0 {
		retention = *days
	}

	if err := run(logger, cfg.Database, retention, time.Now()); err != nil {
		logger.Error("purge failed", slog.Int("retention_days", retention), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, db config.DatabaseConfig, retentionDays int, now time.Time) error {
	if retentionDays <= 0 {
		return errors.New("retention days must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	cutoff := now.AddDate(0, 0, -retentionDays)
	started := time.Now()

	deleted, err := summary.New(pool).PurgeExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("expired summaries purged",
		slog.Int("retention_days", retentionDays),
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", deleted),
		slog.Duration("took", time.Since(started)),
	)
	return nil
}
