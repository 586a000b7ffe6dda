package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

type stubProjectService struct {
	listFn   func(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error)
	getFn    func(ctx context.Context, viewer *domain.Principal, id string) (*domain.Project, error)
	createFn func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error)
	updateFn func(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProjectService) List(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error) {
	return s.listFn(ctx, viewer)
}

func (s *stubProjectService) Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Project, error) {
	return s.getFn(ctx, viewer, id)
}

func (s *stubProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, in)
}

func (s *stubProjectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProjectService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProjectService) Categories(ctx context.Context) ([]string, error) {
	return []string{"3d", "motion"}, nil
}

func TestProjectHandler_List_PassesPrincipal(t *testing.T) {
	var gotViewer *domain.Principal
	stub := &stubProjectService{
		listFn: func(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error) {
			gotViewer = viewer
			return []domain.Project{{ID: "p1", Title: "Reel"}}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/projects", "")
	admin := &domain.Principal{UserID: "u1", Roles: []domain.Role{domain.RoleAdmin}}
	c.Set("principal", admin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotViewer != admin {
		t.Fatalf("expected the request principal to reach the service")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_List_AnonymousViewerIsNil(t *testing.T) {
	var gotViewer *domain.Principal = &domain.Principal{}
	stub := &stubProjectService{
		listFn: func(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error) {
			gotViewer = viewer
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newJSONContext(t, http.MethodGet, "/api/projects", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotViewer != nil {
		t.Fatalf("expected nil viewer for anonymous request, got %+v", gotViewer)
	}
}

func TestProjectHandler_Get_NotFoundPassesThrough(t *testing.T) {
	stub := &stubProjectService{
		getFn: func(ctx context.Context, viewer *domain.Principal, id string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newJSONContext(t, http.MethodGet, "/api/projects/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_Create(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
			if in.Title != "Reel 2025" || in.Category != "motion" || !in.IsActive {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Project{ID: "p1", Title: in.Title, Category: in.Category, IsActive: in.IsActive}, nil
		},
	}
	h := NewProjectHandler(stub)

	body := `{"title":"Reel 2025","category":"motion","software":["blender"],"is_active":true}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/projects", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "p1" {
		t.Fatalf("unexpected project: %+v", resp)
	}
}

func TestProjectHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/projects", `{"category":"motion"}`)
	if code := httpCode(t, h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	var deleted string
	stub := &stubProjectService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/projects/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("expected delete of p1, got %q", deleted)
	}
}
