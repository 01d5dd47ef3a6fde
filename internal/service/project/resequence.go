package project

import (
	"context"
	"log/slog"
)

// Resequence renumbers every record to 1..N in display order, repairing
// gaps and duplicates left by relaxed-mode races or legacy rows.
func (s *Service) Resequence(ctx context.Context) (int64, error) {
	var changed int64
	err := s.seq.Run(ctx, func(ctx context.Context) error {
		var err error
		changed, err = s.seq.Renumber(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "projects resequenced", slog.Int64("changed", changed))
	return changed, nil
}
