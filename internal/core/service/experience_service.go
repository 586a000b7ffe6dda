package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ExperienceService mirrors ProjectService for work-history entries.
type ExperienceService struct {
	repo   ports.ExperienceRepository
	logger zerolog.Logger
}

func NewExperienceService(repo ports.ExperienceRepository, logger zerolog.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, logger: logger}
}

func (s *ExperienceService) List(ctx context.Context, viewer *domain.Principal) ([]domain.Experience, error) {
	return s.repo.List(ctx, domain.IncludeInactive(viewer))
}

func (s *ExperienceService) Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Experience, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exp.IsActive && !domain.IncludeInactive(viewer) {
		return nil, domain.ErrExperienceNotFound
	}
	return exp, nil
}

func (s *ExperienceService) Create(ctx context.Context, in ports.ExperienceInput) (*domain.Experience, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, experienceFromInput(in, now, now))
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("experience_id", created.ID).Str("company", created.Company).Msg("experience created")
	return created, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, in ports.ExperienceInput) (*domain.Experience, error) {
	return s.repo.Update(ctx, id, experienceFromInput(in, time.Time{}, time.Now().UTC()))
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func experienceFromInput(in ports.ExperienceInput, createdAt, updatedAt time.Time) *domain.Experience {
	return &domain.Experience{
		Company:            in.Company,
		CompanyEn:          in.CompanyEn,
		Role:               in.Role,
		RoleEn:             in.RoleEn,
		Period:             in.Period,
		Responsibilities:   in.Responsibilities,
		ResponsibilitiesEn: in.ResponsibilitiesEn,
		Technologies:       in.Technologies,
		DisplayOrder:       in.DisplayOrder,
		IsActive:           in.IsActive,
		IsCurrent:          in.IsCurrent,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
