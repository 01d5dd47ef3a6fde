package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio record shown in display order.
// Position 0 marks a legacy record stored without a position.
type Project struct {
	ID          uuid.UUID
	Name        string
	Link        string
	YearLabel   string
	Description string
	Active      bool
	Layout      Layout
	Images      []string
	Videos      []string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrimaryImage returns the first image reference or an empty string.
func (p *Project) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PrimaryVideo returns the first video reference or an empty string.
func (p *Project) PrimaryVideo() string {
	if len(p.Videos) == 0 {
		return ""
	}
	return p.Videos[0]
}

// ProjectUpdateParams holds a partial update. Nil fields are left untouched.
// Position is not part of it: only the sequencer writes positions.
type ProjectUpdateParams struct {
	Name        *string
	Link        *string
	YearLabel   *string
	Description *string
	Active      *bool
	Layout      *Layout
	Images      []string // nil = keep, non-nil = replace
	Videos      []string // nil = keep, non-nil = replace
}

// IsEmpty reports whether no field is set.
func (p ProjectUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Link == nil && p.YearLabel == nil && p.Description == nil &&
		p.Active == nil && p.Layout == nil && p.Images == nil && p.Videos == nil
}

// PositionFilter selects records for a range shift. Nil bounds are open.
// ExcludeID, when set, keeps one record out of the shift.
type PositionFilter struct {
	GTE       *int
	GT        *int
	LT        *int
	LTE       *int
	ExcludeID uuid.UUID
}

// Visibility controls which records a listing may return.
type Visibility int

const (
	// VisibilityPublic returns active records and legacy records without the flag.
	VisibilityPublic Visibility = iota
	// VisibilityAll returns every record.
	VisibilityAll
)

// ComposeYearLabel builds the display year: "{month} {year}" or just year.
func ComposeYearLabel(month, year string) string {
	if month != "" {
		return month + " " + year
	}
	return year
}
