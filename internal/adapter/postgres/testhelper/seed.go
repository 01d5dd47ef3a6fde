package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// SeedProject inserts a record with the given position (0 stores NULL) and
// returns it. createdAt orders ties; pass the zero time for now().
func SeedProject(t *testing.T, pool *pgxpool.Pool, name string, position int, createdAt time.Time) domain.Project {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC().Truncate(time.Microsecond)

	p := domain.Project{
		ID:        uuid.New(),
		Name:      name,
		Link:      "https://example.com/" + name,
		YearLabel: "2024",
		Active:    true,
		Layout:    domain.LayoutLeft,
		Images:    []string{},
		Videos:    []string{},
		Position:  position,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	var pos any
	if position > 0 {
		pos = position
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name, link, year_label, active, layout, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		p.ID, p.Name, p.Link, p.YearLabel, p.Active, string(p.Layout), pos, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject %q: %v", name, err)
	}
	return p
}

// SeedLegacyProject inserts a record with NULL position and NULL active,
// the shape of rows written before ordering and visibility existed.
func SeedLegacyProject(t *testing.T, pool *pgxpool.Pool, name string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name, link, year_label, active, position, created_at, updated_at)
		 VALUES ($1, $2, '', '2019', NULL, NULL, $3, $3)`,
		id, name, createdAt.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLegacyProject %q: %v", name, err)
	}
	return id
}

// Order returns record names in display order.
func Order(t *testing.T, pool *pgxpool.Pool) []string {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		`SELECT name FROM projects ORDER BY COALESCE(position, 0) ASC, created_at DESC`)
	if err != nil {
		t.Fatalf("testhelper: Order: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			t.Fatalf("testhelper: Order scan: %v", err)
		}
		names = append(names, n)
	}
	return names
}
