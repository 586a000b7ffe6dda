package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ContactService handles public submissions and the admin inbox.
type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	created, err := s.repo.Create(ctx, &domain.ContactMessage{
		Name:        in.Name,
		Email:       in.Email,
		ProjectType: in.ProjectType,
		Message:     in.Message,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *ContactService) List(ctx context.Context, archived bool) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx, archived)
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.SetRead(ctx, id, true)
}

func (s *ContactService) SetArchived(ctx context.Context, id string, archived bool) (*domain.ContactMessage, error) {
	return s.repo.SetArchived(ctx, id, archived)
}

func (s *ContactService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
