package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// DeleteProject removes a record and, when configured, closes the gap it
// leaves in the sequence. The nil id never names a record and is reported
// as not found without touching the store.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("delete project: %w", domain.ErrNotFound)
	}

	var deleted *domain.Project
	err := s.seq.Run(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.projects.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete project: %w", err)
		}

		if s.opts.CloseGapOnDelete {
			return s.seq.CloseGap(ctx, deleted.Position)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", id.String()),
		slog.Int("position", deleted.Position),
		slog.Bool("gap_closed", s.opts.CloseGapOnDelete && deleted.Position > 0),
	)

	return nil
}
