package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ContactRepository persists contact messages. List filters on the archived
// flag and returns newest first.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context, archived bool) ([]domain.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.ContactMessage, error)
	SetArchived(ctx context.Context, id string, archived bool) (*domain.ContactMessage, error)
	CountUnread(ctx context.Context) (int64, error)
}
