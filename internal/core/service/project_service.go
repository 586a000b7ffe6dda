package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ProjectService applies the visibility rule to reads and performs admin
// mutations. Role gating itself happens upstream in middleware.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context, viewer *domain.Principal) ([]domain.Project, error) {
	return s.repo.List(ctx, domain.IncludeInactive(viewer))
}

// Get responds "not found" for inactive records requested by non-admins, so
// the record's existence is not revealed.
func (s *ProjectService) Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsActive && !domain.IncludeInactive(viewer) {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, projectFromInput(in, now, now))
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	return s.repo.Update(ctx, id, projectFromInput(in, time.Time{}, time.Now().UTC()))
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func projectFromInput(in ports.ProjectInput, createdAt, updatedAt time.Time) *domain.Project {
	return &domain.Project{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Category:      in.Category,
		Client:        in.Client,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Software:      in.Software,
		ThumbnailURL:  in.ThumbnailURL,
		VideoURL:      in.VideoURL,
		Featured:      in.Featured,
		DisplayOrder:  in.DisplayOrder,
		IsActive:      in.IsActive,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
