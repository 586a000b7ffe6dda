package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ProjectInput carries the full validated payload for create and update.
type ProjectInput struct {
	Title         string
	TitleEn       string
	Category      string
	Client        string
	Description   string
	DescriptionEn string
	Software      []string
	ThumbnailURL  string
	VideoURL      string
	Featured      bool
	DisplayOrder  int
	IsActive      bool
}

// ProjectService defines use-case operations for projects. Read operations
// take the (possibly nil) principal so the visibility rule can be applied;
// mutations are admin-gated upstream by middleware.
type ProjectService interface {
	List(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error)
	Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Project, error)
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}
