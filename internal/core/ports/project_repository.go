package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ProjectRepository persists portfolio projects. List is ordered by
// display_order ascending; includeInactive widens the filter for admins.
type ProjectRepository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	// Categories returns the distinct categories of active projects.
	Categories(ctx context.Context) ([]string, error)
}
