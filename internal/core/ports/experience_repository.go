package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ExperienceRepository persists work-history entries, ordered by
// display_order ascending.
type ExperienceRepository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id string, e *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
