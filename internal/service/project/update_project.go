package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// UpdateProject merges the set fields of input into the stored record.
// New images or videos replace the stored list. A changed position moves
// the record; a position past the end is clamped to the last place.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := checkFileLimit(s.opts.MaxFilesPerKind, input.Images, input.Videos); err != nil {
		return nil, err
	}

	// Existence first: an unknown id must not cost any uploads.
	if _, err := s.projects.GetByID(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	images, videos, err := s.uploadBoth(ctx, input.Images, input.Videos)
	if err != nil {
		return nil, fmt.Errorf("upload attachments: %w", err)
	}

	params := domain.ProjectUpdateParams{
		Name:        trimmed(input.Name),
		Link:        trimmed(input.Link),
		Description: input.Description,
		Active:      input.Active,
		Layout:      input.Layout,
		Images:      images,
		Videos:      videos,
	}
	if input.Year != nil {
		month := ""
		if input.Month != nil {
			month = strings.TrimSpace(*input.Month)
		}
		params.YearLabel = ptr(domain.ComposeYearLabel(month, strings.TrimSpace(*input.Year)))
	}

	var (
		updated *domain.Project
		moved   [2]int
	)
	err = s.seq.Run(ctx, func(ctx context.Context) error {
		var err error
		if input.Position != nil {
			from, to, moveErr := s.move(ctx, input, *input.Position)
			if moveErr != nil {
				return moveErr
			}
			moved = [2]int{from, to}
		}

		if params.IsEmpty() {
			updated, err = s.projects.GetByID(ctx, input.ID)
		} else {
			updated, err = s.projects.Update(ctx, input.ID, params)
		}
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{slog.String("project_id", input.ID.String())}
	if moved[0] != moved[1] {
		attrs = append(attrs, slog.Int("from", moved[0]), slog.Int("to", moved[1]))
	}
	s.log.InfoContext(ctx, "project updated", attrs...)

	return updated, nil
}

// move resolves old and new positions under the sequencing guard and
// applies the move. A record stored without a position moves from the
// last place.
func (s *Service) move(ctx context.Context, input UpdateProjectInput, requested int) (int, int, error) {
	current, err := s.projects.GetByID(ctx, input.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("get project: %w", err)
	}
	count, err := s.projects.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count projects: %w", err)
	}

	newPos := min(requested, count)
	oldPos := current.Position
	if oldPos <= 0 {
		oldPos = count
	}

	if err := s.seq.ApplyMove(ctx, input.ID, oldPos, newPos); err != nil {
		return 0, 0, err
	}
	return oldPos, newPos, nil
}
