// Command resequence rewrites project positions to a dense 1..N sequence
// in display order. It repairs gaps left by relaxed-mode failures and
// assigns positions to legacy records. Run it from cron or by hand.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/portfolio-backend/internal/adapter/postgres"
	projectrepo "github.com/heartmarshall/portfolio-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/portfolio-backend/internal/app"
	"github.com/heartmarshall/portfolio-backend/internal/config"
	"github.com/heartmarshall/portfolio-backend/internal/domain"
	"github.com/heartmarshall/portfolio-backend/internal/service/project"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "only report sequence problems")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(logger, cfg, *dryRun); err != nil {
		logger.Error("resequence failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, dryRun bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := projectrepo.New(pool)

	all, err := repo.List(ctx, domain.VisibilityAll)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if conflict := project.CheckSequence(all, true); conflict != nil {
		logger.Warn("sequence inconsistent", slog.String("detail", conflict.Error()))
	} else {
		logger.Info("sequence is dense", slog.Int("projects", len(all)))
	}
	if dryRun {
		return nil
	}

	// Uploads are never performed here; the service only needs its store side.
	svc := project.NewService(logger, repo, nil, postgres.NewTxManager(pool), project.Options{
		Consistency: domain.ConsistencySerialized,
		LockKey:     cfg.Sequence.LockKey,
	})

	changed, err := svc.Resequence(ctx)
	if err != nil {
		return fmt.Errorf("resequence: %w", err)
	}

	positions, err := repo.Positions(ctx)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	if err := verifyDense(positions); err != nil {
		return err
	}

	logger.Info("resequence completed",
		slog.Int64("changed", changed),
		slog.Int("projects", len(positions)),
	)
	return nil
}

// verifyDense checks that sorted positions are exactly 1..N.
func verifyDense(positions []int) error {
	for i, pos := range positions {
		if pos != i+1 {
			return fmt.Errorf("positions not dense after resequence: index %d holds %d", i, pos)
		}
	}
	return nil
}
