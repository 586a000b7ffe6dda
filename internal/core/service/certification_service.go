package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// CertificationService mirrors ProjectService for certifications.
type CertificationService struct {
	repo   ports.CertificationRepository
	logger zerolog.Logger
}

func NewCertificationService(repo ports.CertificationRepository, logger zerolog.Logger) *CertificationService {
	return &CertificationService{repo: repo, logger: logger}
}

func (s *CertificationService) List(ctx context.Context, viewer *domain.Principal) ([]domain.Certification, error) {
	return s.repo.List(ctx, domain.IncludeInactive(viewer))
}

func (s *CertificationService) Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Certification, error) {
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cert.IsActive && !domain.IncludeInactive(viewer) {
		return nil, domain.ErrCertificationNotFound
	}
	return cert, nil
}

func (s *CertificationService) Create(ctx context.Context, in ports.CertificationInput) (*domain.Certification, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, certificationFromInput(in, now, now))
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("certification_id", created.ID).Str("title", created.Title).Msg("certification created")
	return created, nil
}

func (s *CertificationService) Update(ctx context.Context, id string, in ports.CertificationInput) (*domain.Certification, error) {
	return s.repo.Update(ctx, id, certificationFromInput(in, time.Time{}, time.Now().UTC()))
}

func (s *CertificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func certificationFromInput(in ports.CertificationInput, createdAt, updatedAt time.Time) *domain.Certification {
	return &domain.Certification{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		CredentialID:  in.CredentialID,
		CredentialURL: in.CredentialURL,
		DisplayOrder:  in.DisplayOrder,
		IsActive:      in.IsActive,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
