// Package project implements the ordered project lifecycle: creation,
// partial update with repositioning, deletion with gap closure, and
// visibility-filtered listing.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

//go:generate moq -out project_repo_mock_test.go -pkg project . projectRepo
//go:generate moq -out uploader_mock_test.go -pkg project . uploader
//go:generate moq -out tx_manager_mock_test.go -pkg project . txManager

type projectRepo interface {
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, vis domain.Visibility) ([]*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	SetPosition(ctx context.Context, id uuid.UUID, pos int) error
	Delete(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ShiftPositions(ctx context.Context, f domain.PositionFilter, delta int) (int64, error)
	Renumber(ctx context.Context) (int64, error)
}

type uploader interface {
	UploadAll(ctx context.Context, files []domain.Attachment, kind domain.MediaKind) ([]string, error)
}

type txManager interface {
	RunLocked(ctx context.Context, key int64, fn func(ctx context.Context) error) error
}

// Options tune sequencing and upload limits.
type Options struct {
	Consistency      domain.ConsistencyMode
	LockKey          int64
	CloseGapOnDelete bool
	MaxFilesPerKind  int
}

// Service provides project lifecycle operations.
type Service struct {
	projects projectRepo
	uploads  uploader
	seq      *Sequencer
	opts     Options
	log      *slog.Logger
}

// NewService creates a new project Service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	uploads uploader,
	tx txManager,
	opts Options,
) *Service {
	if !opts.Consistency.IsValid() {
		opts.Consistency = domain.ConsistencySerialized
	}
	return &Service{
		projects: projects,
		uploads:  uploads,
		seq:      NewSequencer(log, projects, tx, opts.Consistency, opts.LockKey),
		opts:     opts,
		log:      log.With("service", "project"),
	}
}

func ptr[T any](v T) *T { return &v }
