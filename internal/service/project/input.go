package project

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxLinkLen        = 2048
	maxDescriptionLen = 5000
	maxYearLabelPart  = 32
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Link        string
	Month       string
	Year        string
	Description string
	Active      *bool          // nil = true
	Layout      *domain.Layout // nil = derived from record count
	Position    *int           // nil, <= 0 or past the end = append
	Images      []domain.Attachment
	Videos      []domain.Attachment
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, requiredText("name", i.Name, maxNameLen)...)
	errs = append(errs, requiredText("link", i.Link, maxLinkLen)...)
	errs = append(errs, requiredText("year", i.Year, maxYearLabelPart)...)
	if len(strings.TrimSpace(i.Month)) > maxYearLabelPart {
		errs = append(errs, domain.FieldError{Field: "month", Message: fmt.Sprintf("max %d characters", maxYearLabelPart)})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	if i.Layout != nil && !i.Layout.IsValid() {
		errs = append(errs, domain.FieldError{Field: "layout", Message: "must be left or right"})
	}

	if len(i.Images)+len(i.Videos) == 0 {
		errs = append(errs, domain.FieldError{Field: "attachments", Message: "at least one image or video is required"})
	}
	errs = append(errs, checkAttachments(domain.MediaKindImage, i.Images)...)
	errs = append(errs, checkAttachments(domain.MediaKindVideo, i.Videos)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds a partial update. Nil fields are left untouched;
// a non-nil empty Description clears it. Non-empty Images or Videos replace
// the stored list.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        *string
	Link        *string
	Month       *string
	Year        *string
	Description *string
	Active      *bool
	Layout      *domain.Layout
	Position    *int
	Images      []domain.Attachment
	Videos      []domain.Attachment
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, requiredText("name", *i.Name, maxNameLen)...)
	}
	if i.Link != nil {
		errs = append(errs, requiredText("link", *i.Link, maxLinkLen)...)
	}
	if i.Year != nil {
		errs = append(errs, requiredText("year", *i.Year, maxYearLabelPart)...)
	}
	if i.Month != nil {
		if i.Year == nil {
			errs = append(errs, domain.FieldError{Field: "month", Message: "requires year"})
		}
		if len(strings.TrimSpace(*i.Month)) > maxYearLabelPart {
			errs = append(errs, domain.FieldError{Field: "month", Message: fmt.Sprintf("max %d characters", maxYearLabelPart)})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	if i.Layout != nil && !i.Layout.IsValid() {
		errs = append(errs, domain.FieldError{Field: "layout", Message: "must be left or right"})
	}
	if i.Position != nil && *i.Position < 1 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be >= 1"})
	}
	errs = append(errs, checkAttachments(domain.MediaKindImage, i.Images)...)
	errs = append(errs, checkAttachments(domain.MediaKindVideo, i.Videos)...)

	if len(errs) == 0 && i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProjectInput) isEmpty() bool {
	return i.Name == nil && i.Link == nil && i.Month == nil && i.Year == nil &&
		i.Description == nil && i.Active == nil && i.Layout == nil && i.Position == nil &&
		len(i.Images) == 0 && len(i.Videos) == 0
}

func requiredText(field, v string, maxLen int) []domain.FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(v) > maxLen {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)}}
	}
	return nil
}

// checkAttachments rejects empty files and files whose sniffed type
// belongs to the other media family. Unrecognized types pass.
func checkAttachments(kind domain.MediaKind, files []domain.Attachment) []domain.FieldError {
	var errs []domain.FieldError
	field := kind.String() + "s"

	for idx, f := range files {
		name := fmt.Sprintf("%s[%d]", field, idx)
		if len(f.Data) == 0 {
			errs = append(errs, domain.FieldError{Field: name, Message: "file is empty"})
			continue
		}

		detected := mimetype.Detect(f.Data)
		family, _, _ := strings.Cut(detected.String(), "/")
		switch {
		case kind == domain.MediaKindImage && family == "video",
			kind == domain.MediaKindVideo && family == "image":
			errs = append(errs, domain.FieldError{
				Field:   name,
				Message: fmt.Sprintf("%s is not a %s", detected.String(), kind),
			})
		}
	}
	return errs
}

// checkFileLimit enforces the per-kind attachment cap.
func checkFileLimit(limit int, images, videos []domain.Attachment) error {
	if limit <= 0 {
		return nil
	}
	var errs []domain.FieldError
	if len(images) > limit {
		errs = append(errs, domain.FieldError{Field: "images", Message: fmt.Sprintf("max %d files", limit)})
	}
	if len(videos) > limit {
		errs = append(errs, domain.FieldError{Field: "videos", Message: fmt.Sprintf("max %d files", limit)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(strings.TrimSpace(*s))
}
