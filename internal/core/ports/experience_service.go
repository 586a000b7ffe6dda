package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ExperienceInput carries the full validated payload for create and update.
type ExperienceInput struct {
	Company            string
	CompanyEn          string
	Role               string
	RoleEn             string
	Period             string
	Responsibilities   []string
	ResponsibilitiesEn []string
	Technologies       []string
	DisplayOrder       int
	IsActive           bool
	IsCurrent          bool
}

// ExperienceService defines use-case operations for experiences.
type ExperienceService interface {
	List(ctx context.Context, viewer *domain.Principal) ([]domain.Experience, error)
	Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Experience, error)
	Create(ctx context.Context, in ExperienceInput) (*domain.Experience, error)
	Update(ctx context.Context, id string, in ExperienceInput) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
