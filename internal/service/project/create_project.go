package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// CreateProject uploads the attachments, then inserts the record at the
// requested position (or appends it). Nothing is written when validation
// or any upload fails.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := checkFileLimit(s.opts.MaxFilesPerKind, input.Images, input.Videos); err != nil {
		return nil, err
	}

	images, videos, err := s.uploadBoth(ctx, input.Images, input.Videos)
	if err != nil {
		return nil, fmt.Errorf("upload attachments: %w", err)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	var (
		created *domain.Project
		shifted bool
	)
	err = s.seq.Run(ctx, func(ctx context.Context) error {
		count, err := s.projects.Count(ctx)
		if err != nil {
			return fmt.Errorf("count projects: %w", err)
		}

		pos, err := s.seq.ResolveInsertPosition(ctx, input.Position, count)
		if err != nil {
			return err
		}
		shifted = pos <= count

		created, err = s.projects.Create(ctx, &domain.Project{
			Name:        strings.TrimSpace(input.Name),
			Link:        strings.TrimSpace(input.Link),
			YearLabel:   domain.ComposeYearLabel(strings.TrimSpace(input.Month), strings.TrimSpace(input.Year)),
			Description: input.Description,
			Active:      active,
			Layout:      DeriveLayout(input.Layout, count),
			Images:      nonNil(images),
			Videos:      nonNil(videos),
			Position:    pos,
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return nil
	})
	if err != nil {
		if shifted && s.opts.Consistency == domain.ConsistencyRelaxed {
			s.log.WarnContext(ctx, "positions shifted but record not written; sequence has a gap until the next resequence",
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.Int("position", created.Position),
		slog.String("layout", created.Layout.String()),
		slog.Int("images", len(created.Images)),
		slog.Int("videos", len(created.Videos)),
	)

	return created, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
