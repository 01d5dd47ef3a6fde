// Package media uploads batches of attachments to an object store.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

//go:generate moq -out store_mock_test.go -pkg media . store

type store interface {
	Put(ctx context.Context, kind domain.MediaKind, a domain.Attachment) (string, error)
}

// Config bounds upload parallelism.
type Config struct {
	// Concurrency caps parallel uploads within one batch.
	Concurrency int
	// MaxInflight caps parallel uploads across all batches in the process.
	MaxInflight int
	// Timeout applies to each single upload.
	Timeout time.Duration
}

// Uploader sends attachments to a store in parallel.
type Uploader struct {
	log      *slog.Logger
	store    store
	limit    int
	inflight *semaphore.Weighted
	timeout  time.Duration
}

// NewUploader creates an Uploader. Non-positive limits fall back to 1.
func NewUploader(log *slog.Logger, s store, cfg Config) *Uploader {
	limit := max(cfg.Concurrency, 1)
	inflight := max(cfg.MaxInflight, limit)
	return &Uploader{
		log:      log.With("service", "media"),
		store:    s,
		limit:    limit,
		inflight: semaphore.NewWeighted(int64(inflight)),
		timeout:  cfg.Timeout,
	}
}

// UploadAll uploads every file and returns the references in input order.
// The result is all-or-nothing: on the first failure the remaining uploads
// are cancelled and a *domain.UploadError naming the failed file is returned.
// References already produced by sibling uploads are discarded.
func (u *Uploader) UploadAll(ctx context.Context, files []domain.Attachment, kind domain.MediaKind) ([]string, error) {
	refs := make([]string, len(files))
	if len(files) == 0 {
		return refs, nil
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.limit)

	for i, f := range files {
		g.Go(func() error {
			ref, err := u.uploadOne(gctx, kind, f)
			if err != nil {
				return &domain.UploadError{Kind: kind, Index: i, Name: f.Name, Err: err}
			}
			refs[i] = ref
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.WarnContext(ctx, "attachment batch failed",
			slog.String("kind", kind.String()),
			slog.Int("files", len(files)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	u.log.InfoContext(ctx, "attachments uploaded",
		slog.String("kind", kind.String()),
		slog.Int("files", len(files)),
		slog.Duration("duration", time.Since(start)),
	)
	return refs, nil
}

func (u *Uploader) uploadOne(ctx context.Context, kind domain.MediaKind, f domain.Attachment) (string, error) {
	if err := u.inflight.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for upload slot: %w", err)
	}
	defer u.inflight.Release(1)

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	ref, err := u.store.Put(ctx, kind, f)
	if err != nil {
		return "", err
	}
	return ref, nil
}
