package project

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// memoryRepo is an in-memory projectRepo with the same filter and ordering
// semantics as the PostgreSQL store.
type memoryRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*domain.Project
	clock   time.Time
	creates int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		rows:  make(map[uuid.UUID]*domain.Project),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// seed inserts records at positions 1..n named p1..pn and returns their IDs
// by position (index 0 = position 1).
func (m *memoryRepo) seed(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range n {
		p, _ := m.Create(context.Background(), &domain.Project{
			Name:     fmt.Sprintf("p%d", i+1),
			Active:   true,
			Position: i + 1,
		})
		ids[i] = p.ID
	}
	m.creates = 0
	return ids
}

func (m *memoryRepo) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepo) List(_ context.Context, vis domain.Visibility) ([]*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Project, 0, len(m.rows))
	for _, p := range m.rows {
		if vis == domain.VisibilityPublic && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *domain.Project) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (m *memoryRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	m.clock = m.clock.Add(time.Second)
	cp.CreatedAt, cp.UpdatedAt = m.clock, m.clock
	m.rows[cp.ID] = &cp
	m.creates++
	out := cp
	return &out, nil
}

func (m *memoryRepo) Update(_ context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Link != nil {
		p.Link = *params.Link
	}
	if params.YearLabel != nil {
		p.YearLabel = *params.YearLabel
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Active != nil {
		p.Active = *params.Active
	}
	if params.Layout != nil {
		p.Layout = *params.Layout
	}
	if params.Images != nil {
		p.Images = params.Images
	}
	if params.Videos != nil {
		p.Videos = params.Videos
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepo) SetPosition(_ context.Context, id uuid.UUID, pos int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	p.Position = pos
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(m.rows, id)
	return p, nil
}

func (m *memoryRepo) ShiftPositions(_ context.Context, f domain.PositionFilter, delta int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.rows {
		pos := p.Position
		switch {
		case pos <= 0,
			id == f.ExcludeID,
			f.GTE != nil && pos < *f.GTE,
			f.GT != nil && pos <= *f.GT,
			f.LT != nil && pos >= *f.LT,
			f.LTE != nil && pos > *f.LTE:
			continue
		}
		p.Position += delta
		n++
	}
	return n, nil
}

func (m *memoryRepo) Renumber(ctx context.Context) (int64, error) {
	all, _ := m.List(ctx, domain.VisibilityAll)
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i, p := range all {
		if m.rows[p.ID].Position != i+1 {
			m.rows[p.ID].Position = i + 1
			n++
		}
	}
	return n, nil
}

// positions returns id -> position.
func (m *memoryRepo) positions() map[uuid.UUID]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]int, len(m.rows))
	for id, p := range m.rows {
		out[id] = p.Position
	}
	return out
}

// dense reports whether positions are exactly 1..N.
func (m *memoryRepo) dense() bool {
	all, _ := m.List(context.Background(), domain.VisibilityAll)
	return CheckSequence(all, true) == nil
}
