package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// CertificationInput carries the full validated payload for create and update.
type CertificationInput struct {
	Title         string
	TitleEn       string
	Issuer        string
	IssueDate     string
	CredentialID  string
	CredentialURL string
	DisplayOrder  int
	IsActive      bool
}

// CertificationService defines use-case operations for certifications.
type CertificationService interface {
	List(ctx context.Context, viewer *domain.Principal) ([]domain.Certification, error)
	Get(ctx context.Context, viewer *domain.Principal, id string) (*domain.Certification, error)
	Create(ctx context.Context, in CertificationInput) (*domain.Certification, error)
	Update(ctx context.Context, id string, in CertificationInput) (*domain.Certification, error)
	Delete(ctx context.Context, id string) error
}
