package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// CertificationRepository persists certifications, ordered by display_order
// ascending.
type CertificationRepository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Certification, error)
	FindByID(ctx context.Context, id string) (*domain.Certification, error)
	Create(ctx context.Context, c *domain.Certification) (*domain.Certification, error)
	Update(ctx context.Context, id string, c *domain.Certification) (*domain.Certification, error)
	Delete(ctx context.Context, id string) error
}
