package project

import (
	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p        domain.Project
		layout   string
		active   *bool
		position *int32
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Link, &p.YearLabel, &p.Description, &active,
		&layout, &p.Images, &p.Videos, &position, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL active predates the flag and counts as visible.
	p.Active = active == nil || *active
	p.Layout = domain.Layout(layout)
	if position != nil {
		p.Position = int(*position)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Videos == nil {
		p.Videos = []string{}
	}
	return &p, nil
}

func positionArg(pos int) any {
	if pos <= 0 {
		return nil
	}
	return int32(pos)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
