package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/portfolio-backend/internal/adapter/postgres"
	projectrepo "github.com/heartmarshall/portfolio-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/portfolio-backend/internal/auth"
	"github.com/heartmarshall/portfolio-backend/internal/config"
	"github.com/heartmarshall/portfolio-backend/internal/service/media"
	"github.com/heartmarshall/portfolio-backend/internal/service/project"
	"github.com/heartmarshall/portfolio-backend/internal/transport/middleware"
	"github.com/heartmarshall/portfolio-backend/internal/transport/rest"
)

// Run loads configuration, wires the application and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("media_provider", cfg.Media.Provider),
		slog.String("consistency", cfg.Sequence.Consistency),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, logger, pool); err != nil {
			return err
		}
	}

	store, files, err := newMediaStore(logger, cfg.Media)
	if err != nil {
		return err
	}

	uploader := media.NewUploader(logger, store, media.Config{
		Concurrency: cfg.Media.UploadConcurrency,
		MaxInflight: cfg.Media.MaxInflightUploads,
		Timeout:     cfg.Media.UploadTimeout,
	})
	projects := project.NewService(logger,
		projectrepo.New(pool),
		uploader,
		postgres.NewTxManager(pool),
		project.Options{
			Consistency:      cfg.Sequence.Mode(),
			LockKey:          cfg.Sequence.LockKey,
			CloseGapOnDelete: cfg.Sequence.CloseGapOnDelete,
			MaxFilesPerKind:  cfg.Media.MaxFilesPerKind,
		},
	)

	gate := auth.NewGate(logger,
		auth.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth.AdminRole,
		cfg.Auth.AdminAPIKeyHash,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(logger, cfg, routerDeps{
		health: rest.NewHealthHandler(BuildVersion(),
			rest.Dependency{Name: "database", Pinger: pool},
			rest.Dependency{Name: "media", Pinger: store},
		),
		projects: rest.NewProjectHandler(projects, cfg.Media.MaxRequestBytes, logger),
		media:    files,
		gate:     gate,
		limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
