package project

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

type positionRepo interface {
	ShiftPositions(ctx context.Context, f domain.PositionFilter, delta int) (int64, error)
	SetPosition(ctx context.Context, id uuid.UUID, pos int) error
	Renumber(ctx context.Context) (int64, error)
}

// Sequencer keeps record positions a dense 1..N sequence. It is the only
// writer of positions.
//
// Every change is a bulk range shift followed by a single-record write.
// In relaxed mode the two run as separate statements and a concurrent
// change can interleave, leaving a transient duplicate or gap that later
// reads still sort deterministically. In serialized mode both run in one
// transaction under a collection-wide advisory lock.
type Sequencer struct {
	repo    positionRepo
	tx      txManager
	mode    domain.ConsistencyMode
	lockKey int64
	log     *slog.Logger
}

// NewSequencer creates a Sequencer.
func NewSequencer(log *slog.Logger, repo positionRepo, tx txManager, mode domain.ConsistencyMode, lockKey int64) *Sequencer {
	return &Sequencer{
		repo:    repo,
		tx:      tx,
		mode:    mode,
		lockKey: lockKey,
		log:     log.With("component", "sequencer"),
	}
}

// Run executes a shift-then-write pair under the configured consistency mode.
func (s *Sequencer) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.mode == domain.ConsistencySerialized {
		return s.tx.RunLocked(ctx, s.lockKey, fn)
	}
	return fn(ctx)
}

// ResolveInsertPosition returns where a new record goes. A missing,
// non-positive or past-the-end request appends at count+1 with no shift.
// Otherwise every record at or after the requested position moves one
// place down to make room.
func (s *Sequencer) ResolveInsertPosition(ctx context.Context, requested *int, count int) (int, error) {
	if requested == nil || *requested <= 0 || *requested > count+1 {
		return count + 1, nil
	}

	p := *requested
	if _, err := s.repo.ShiftPositions(ctx, domain.PositionFilter{GTE: &p}, 1); err != nil {
		return 0, fmt.Errorf("open position %d: %w", p, err)
	}
	return p, nil
}

// ApplyMove moves one record from oldPos to newPos.
//
// Moving up (newPos < oldPos) pushes [newPos, oldPos) down by one.
// Moving down (newPos > oldPos) pulls (oldPos, newPos] up by one.
// The moving record is excluded from the shift and written last.
func (s *Sequencer) ApplyMove(ctx context.Context, id uuid.UUID, oldPos, newPos int) error {
	if oldPos == newPos {
		return nil
	}

	var (
		f     domain.PositionFilter
		delta int
	)
	if newPos < oldPos {
		f = domain.PositionFilter{GTE: &newPos, LT: &oldPos, ExcludeID: id}
		delta = 1
	} else {
		f = domain.PositionFilter{GT: &oldPos, LTE: &newPos, ExcludeID: id}
		delta = -1
	}

	if _, err := s.repo.ShiftPositions(ctx, f, delta); err != nil {
		return fmt.Errorf("shift for move %d->%d: %w", oldPos, newPos, err)
	}
	if err := s.repo.SetPosition(ctx, id, newPos); err != nil {
		return fmt.Errorf("set position %d: %w", newPos, err)
	}
	return nil
}

// CloseGap pulls every record after deletedPos up by one.
func (s *Sequencer) CloseGap(ctx context.Context, deletedPos int) error {
	if deletedPos <= 0 {
		return nil
	}
	if _, err := s.repo.ShiftPositions(ctx, domain.PositionFilter{GT: &deletedPos}, -1); err != nil {
		return fmt.Errorf("close gap at %d: %w", deletedPos, err)
	}
	return nil
}

// Renumber rewrites all positions to 1..N in display order.
func (s *Sequencer) Renumber(ctx context.Context) (int64, error) {
	n, err := s.repo.Renumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("renumber: %w", err)
	}
	return n, nil
}

// CheckSequence inspects the positions of listed records. For a complete
// listing it reports duplicates, gaps and records without a position; for
// a filtered listing only duplicates are meaningful. The result is
// advisory: a *domain.SequenceConflictError or nil.
func CheckSequence(projects []*domain.Project, complete bool) error {
	seen := make(map[int]int, len(projects))
	unset := 0
	for _, p := range projects {
		if p.Position <= 0 {
			unset++
			continue
		}
		seen[p.Position]++
	}

	var dups []int
	for pos, n := range seen {
		if n > 1 {
			dups = append(dups, pos)
		}
	}
	slices.Sort(dups)

	var missing []int
	if complete {
		for pos := 1; pos <= len(projects); pos++ {
			if seen[pos] == 0 {
				missing = append(missing, pos)
			}
		}
	} else {
		unset = 0
	}

	if len(dups) == 0 && len(missing) == 0 && unset == 0 {
		return nil
	}
	return &domain.SequenceConflictError{
		Count:      len(projects),
		Duplicates: dups,
		Missing:    missing,
		Unset:      unset,
	}
}
