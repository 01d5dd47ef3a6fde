package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
	"github.com/heartmarshall/portfolio-backend/internal/service/project"
	"github.com/heartmarshall/portfolio-backend/internal/transport/middleware"
	"github.com/heartmarshall/portfolio-backend/pkg/ctxutil"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ListProjects(ctx context.Context, vis domain.Visibility) ([]*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID, vis domain.Visibility) (*domain.Project, error)
}

// ProjectHandler serves the project REST endpoints.
type ProjectHandler struct {
	svc      projectService
	maxBytes int64
	log      *slog.Logger
}

// NewProjectHandler creates a ProjectHandler. maxBytes caps a whole
// multipart request body.
func NewProjectHandler(svc projectService, maxBytes int64, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "project")}
}

// Register mounts the handlers on mux. mutate wraps the write routes.
func (h *ProjectHandler) Register(mux *http.ServeMux, mutate middleware.Middleware) {
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("GET /api/projects/{id}", h.Get)
	mux.Handle("POST /api/projects", mutate(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/projects/{id}", mutate(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/projects/{id}", mutate(http.HandlerFunc(h.Delete)))
}

type projectResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Link         string    `json:"link"`
	YearLabel    string    `json:"yearLabel"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	Layout       string    `json:"layout"`
	Images       []string  `json:"images"`
	PrimaryImage string    `json:"primaryImage"`
	Videos       []string  `json:"videos"`
	PrimaryVideo string    `json:"primaryVideo"`
	Position     *int      `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Link:         p.Link,
		YearLabel:    p.YearLabel,
		Description:  p.Description,
		Active:       p.Active,
		Layout:       p.Layout.String(),
		Images:       nonNil(p.Images),
		PrimaryImage: p.PrimaryImage(),
		Videos:       nonNil(p.Videos),
		PrimaryVideo: p.PrimaryVideo(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Position > 0 {
		pos := p.Position
		resp.Position = &pos
	}
	return resp
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context(), visibility(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id, visibility(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /api/projects (multipart).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	form, err := readForm(w, r, h.maxBytes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	input, err := form.createInput()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PUT /api/projects/{id} (multipart, partial).
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	form, err := readForm(w, r, h.maxBytes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	input, err := form.updateInput(id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeValidation(w, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProjectHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		ue *domain.UploadError
		mb *http.MaxBytesError
	)
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &mb):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "admin access required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict, retry the request")
	case errors.As(err, &ue):
		h.log.WarnContext(r.Context(), "attachment upload failed",
			slog.String("kind", ue.Kind.String()),
			slog.String("file", ue.Name),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "attachment upload failed", File: ue.Name})
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func visibility(ctx context.Context) domain.Visibility {
	if ctxutil.IsAdminCtx(ctx) {
		return domain.VisibilityAll
	}
	return domain.VisibilityPublic
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
