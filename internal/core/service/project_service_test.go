package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

type stubProjectRepo struct {
	projects []domain.Project
	nextID   int
}

func (r *stubProjectRepo) List(_ context.Context, includeInactive bool) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if includeInactive || p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.nextID++
	clone := *p
	clone.ID = "p" + strconv.Itoa(r.nextID)
	r.projects = append(r.projects, clone)
	return &clone, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, p *domain.Project) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			clone := *p
			clone.ID = id
			clone.CreatedAt = r.projects[i].CreatedAt
			r.projects[i] = clone
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.projects {
		if p.IsActive && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

var (
	adminPrincipal = &domain.Principal{UserID: "u1", Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
	userPrincipal  = &domain.Principal{UserID: "u2", Roles: []domain.Role{domain.RoleUser}}
)

func seededProjectService() (*ProjectService, *stubProjectRepo) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "p1", Title: "Active", Category: "web", IsActive: true},
		{ID: "p2", Title: "Hidden", Category: "vfx", IsActive: false},
	}}
	return NewProjectService(repo, zerolog.Nop()), repo
}

func TestProjectService_List_Visibility(t *testing.T) {
	svc, _ := seededProjectService()

	for _, viewer := range []*domain.Principal{nil, userPrincipal} {
		got, err := svc.List(context.Background(), viewer)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for _, p := range got {
			if !p.IsActive {
				t.Fatalf("non-admin listing leaked inactive project %s", p.ID)
			}
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 visible project, got %d", len(got))
		}
	}

	all, err := svc.List(context.Background(), adminPrincipal)
	if err != nil {
		t.Fatalf("List as admin: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin to see 2 projects, got %d", len(all))
	}
}

func TestProjectService_Get_InactiveHiddenFromNonAdmins(t *testing.T) {
	svc, _ := seededProjectService()

	for _, viewer := range []*domain.Principal{nil, userPrincipal} {
		if _, err := svc.Get(context.Background(), viewer, "p2"); !errors.Is(err, domain.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound for inactive project, got %v", err)
		}
	}

	got, err := svc.Get(context.Background(), adminPrincipal, "p2")
	if err != nil {
		t.Fatalf("Get as admin: %v", err)
	}
	if got.ID != "p2" {
		t.Fatalf("unexpected project: %+v", got)
	}
}

func TestProjectService_Get_MissingAndInactiveIndistinguishable(t *testing.T) {
	svc, _ := seededProjectService()

	_, inactiveErr := svc.Get(context.Background(), nil, "p2")
	_, missingErr := svc.Get(context.Background(), nil, "nope")

	if !errors.Is(inactiveErr, domain.ErrProjectNotFound) || !errors.Is(missingErr, domain.ErrProjectNotFound) {
		t.Fatalf("inactive (%v) and missing (%v) must both be not-found", inactiveErr, missingErr)
	}
}

func TestProjectService_CreateUpdateDelete(t *testing.T) {
	svc, repo := seededProjectService()

	created, err := svc.Create(context.Background(), ports.ProjectInput{
		Title: "New", Category: "web", IsActive: true, DisplayOrder: 3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be set: %+v", created)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ProjectInput{
		Title: "Renamed", Category: "web", IsActive: false,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Renamed" || updated.IsActive {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.projects) != 2 {
		t.Fatalf("expected 2 projects after delete, got %d", len(repo.projects))
	}
}

func TestProjectService_Categories_ActiveOnly(t *testing.T) {
	svc, _ := seededProjectService()

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0] != "web" {
		t.Fatalf("expected only active categories, got %v", cats)
	}
}
