package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// ListProjects returns records in display order. Public visibility hides
// records marked inactive; records without the flag stay visible.
// A broken sequence is logged, never returned as an error.
func (s *Service) ListProjects(ctx context.Context, vis domain.Visibility) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx, vis)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if conflict := CheckSequence(projects, vis == domain.VisibilityAll); conflict != nil {
		s.log.WarnContext(ctx, "project sequence inconsistent",
			slog.String("error", conflict.Error()),
		)
	}

	return projects, nil
}

// GetProject returns one record. Inactive records are not found under
// public visibility.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID, vis domain.Visibility) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if vis == domain.VisibilityPublic && !p.Active {
		return nil, fmt.Errorf("get project: project %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}
