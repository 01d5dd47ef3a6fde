package rest

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
	"github.com/heartmarshall/portfolio-backend/internal/service/project"
)

// Parts above this size are spooled to temp files by the multipart reader.
const multipartMemory = 32 << 20

// projectForm is a parsed create/update request.
type projectForm struct {
	values url.Values
	files  map[string][]*multipart.FileHeader
}

// readForm parses a multipart or urlencoded body capped at maxBytes.
func readForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (*projectForm, error) {
	if maxBytes > 0 {
		if r.ContentLength > maxBytes {
			return nil, &http.MaxBytesError{Limit: maxBytes}
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var mb *http.MaxBytesError
		if errors.As(err, &mb) {
			return nil, err
		}
		return nil, domain.NewValidationError("body", "malformed form: "+err.Error())
	}

	f := &projectForm{values: r.PostForm}
	if r.MultipartForm != nil {
		f.files = r.MultipartForm.File
	}
	return f, nil
}

// text returns the raw field value and whether it was sent at all.
func (f *projectForm) text(key string) (string, bool) {
	vs, ok := f.values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (f *projectForm) textPtr(key string) *string {
	v, ok := f.text(key)
	if !ok {
		return nil
	}
	return &v
}

// layout reads "layout", falling back to the legacy "align" field.
func (f *projectForm) layout() *domain.Layout {
	v, ok := f.text("layout")
	if !ok || v == "" {
		v, ok = f.text("align")
	}
	if !ok || v == "" {
		return nil
	}
	l := domain.Layout(strings.ToLower(strings.TrimSpace(v)))
	return &l
}

func (f *projectForm) boolean(key string, errs *[]domain.FieldError) *bool {
	v, ok := f.text(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: key, Message: "must be true or false"})
		return nil
	}
	return &b
}

func (f *projectForm) integer(key string, errs *[]domain.FieldError) *int {
	v, ok := f.text(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return nil
	}
	return &n
}

// attachments reads every file part under key into memory.
func (f *projectForm) attachments(key string) ([]domain.Attachment, error) {
	headers := f.files[key]
	if len(headers) == 0 {
		return nil, nil
	}

	out := make([]domain.Attachment, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s %q: %w", key, fh.Filename, err)
		}
		out = append(out, domain.Attachment{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return out, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (f *projectForm) readFiles() ([]domain.Attachment, []domain.Attachment, error) {
	images, err := f.attachments("images")
	if err != nil {
		return nil, nil, err
	}
	videos, err := f.attachments("videos")
	if err != nil {
		return nil, nil, err
	}
	return images, videos, nil
}

func (f *projectForm) createInput() (project.CreateProjectInput, error) {
	var errs []domain.FieldError
	in := project.CreateProjectInput{
		Layout:   f.layout(),
		Active:   f.boolean("active", &errs),
		Position: f.integer("position", &errs),
	}
	in.Name, _ = f.text("name")
	in.Link, _ = f.text("link")
	in.Month, _ = f.text("month")
	in.Year, _ = f.text("year")
	in.Description, _ = f.text("description")
	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}

	var err error
	in.Images, in.Videos, err = f.readFiles()
	return in, err
}

func (f *projectForm) updateInput(id uuid.UUID) (project.UpdateProjectInput, error) {
	var errs []domain.FieldError
	in := project.UpdateProjectInput{
		ID:          id,
		Name:        f.textPtr("name"),
		Link:        f.textPtr("link"),
		Month:       f.textPtr("month"),
		Year:        f.textPtr("year"),
		Description: f.textPtr("description"),
		Layout:      f.layout(),
		Active:      f.boolean("active", &errs),
		Position:    f.integer("position", &errs),
	}
	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}

	var err error
	in.Images, in.Videos, err = f.readFiles()
	return in, err
}
