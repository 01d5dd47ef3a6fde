// Package project implements the ordered project repository on PostgreSQL.
// Queries are built with squirrel; position shifts are single UPDATE
// statements over a half-open range.
package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

const table = "projects"

var columns = []string{
	"id", "name", "link", "year_label", "description", "active",
	"layout", "images", "videos", "position", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides project persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Count returns the number of stored records, active or not.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return int(n), nil
}

// GetByID returns a record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	p, err := scanProject(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// List returns records in display order: ascending position with legacy
// records (no position) first, ties broken by newest first.
func (r *Repo) List(ctx context.Context, vis domain.Visibility) ([]*domain.Project, error) {
	b := psql.Select(columns...).From(table).
		OrderBy("COALESCE(position, 0) ASC", "created_at DESC")
	if vis == domain.VisibilityPublic {
		b = b.Where(sq.Or{sq.Eq{"active": nil}, sq.Eq{"active": true}})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// Positions returns the stored positions in ascending order; legacy
// records contribute 0.
func (r *Repo) Positions(ctx context.Context) ([]int, error) {
	query, args, err := psql.Select("COALESCE(position, 0)").From(table).
		OrderBy("1").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build positions: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var pos int32
		if err := rows.Scan(&pos); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		out = append(out, int(pos))
	}
	return out, rows.Err()
}

// Create inserts a record and returns it with generated fields filled.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p == nil {
		return nil, errors.New("create project: nil record")
	}

	cols := []string{"name", "link", "year_label", "description", "active", "layout", "images", "videos", "position"}
	vals := []any{p.Name, p.Link, p.YearLabel, p.Description, p.Active, string(p.Layout),
		nonNil(p.Images), nonNil(p.Videos), positionArg(p.Position)}
	if p.ID != uuid.Nil {
		cols = append([]string{"id"}, cols...)
		vals = append([]any{p.ID}, vals...)
	}

	b := psql.Insert(table).Columns(cols...).Values(vals...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanProject(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// Update applies the set fields of params and bumps updated_at.
// Empty params return the current record unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := psql.Update(table)
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Link != nil {
		b = b.Set("link", *params.Link)
	}
	if params.YearLabel != nil {
		b = b.Set("year_label", *params.YearLabel)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Active != nil {
		b = b.Set("active", *params.Active)
	}
	if params.Layout != nil {
		b = b.Set("layout", string(*params.Layout))
	}
	if params.Images != nil {
		b = b.Set("images", params.Images)
	}
	if params.Videos != nil {
		b = b.Set("videos", params.Videos)
	}

	query, args, err := b.Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanProject(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return updated, nil
}

// SetPosition writes the position of one record. pos 0 clears it.
func (r *Repo) SetPosition(ctx context.Context, id uuid.UUID, pos int) error {
	query, args, err := psql.Update(table).
		Set("position", positionArg(pos)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set position: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a record and returns it as it was stored.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete: %w", err)
	}

	deleted, err := scanProject(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return deleted, nil
}

// ShiftPositions adds delta to the position of every record inside the
// filter's range and returns how many rows moved. Records without a
// position never match. An unbounded filter is refused.
func (r *Repo) ShiftPositions(ctx context.Context, f domain.PositionFilter, delta int) (int64, error) {
	if delta == 0 {
		return 0, nil
	}

	b := psql.Update(table).Set("position", sq.Expr("position + ?", delta))

	bounded := false
	if f.GTE != nil {
		b = b.Where(sq.GtOrEq{"position": *f.GTE})
		bounded = true
	}
	if f.GT != nil {
		b = b.Where(sq.Gt{"position": *f.GT})
		bounded = true
	}
	if f.LT != nil {
		b = b.Where(sq.Lt{"position": *f.LT})
		bounded = true
	}
	if f.LTE != nil {
		b = b.Where(sq.LtOrEq{"position": *f.LTE})
		bounded = true
	}
	if !bounded {
		return 0, errors.New("shift positions: filter has no bounds")
	}
	if f.ExcludeID != uuid.Nil {
		b = b.Where(sq.NotEq{"id": f.ExcludeID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build shift: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("shift positions by %d: %w", delta, err)
	}
	return tag.RowsAffected(), nil
}

const renumberSQL = `
UPDATE projects p
SET position = r.rn, updated_at = now()
FROM (
    SELECT id, ROW_NUMBER() OVER (ORDER BY COALESCE(position, 0) ASC, created_at DESC) AS rn
    FROM projects
) r
WHERE p.id = r.id AND p.position IS DISTINCT FROM r.rn`

// Renumber rewrites every position to 1..N following the current display
// order and returns the number of rows that changed.
func (r *Repo) Renumber(ctx context.Context) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, renumberSQL)
	if err != nil {
		return 0, fmt.Errorf("renumber projects: %w", err)
	}
	return tag.RowsAffected(), nil
}
