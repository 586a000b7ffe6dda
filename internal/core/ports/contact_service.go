package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// ContactInput is a public contact form submission.
type ContactInput struct {
	Name        string
	Email       string
	ProjectType string
	Message     string
}

// ContactService defines the public submission entry point and the admin
// inbox operations.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context, archived bool) ([]domain.ContactMessage, error)
	Get(ctx context.Context, id string) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	SetArchived(ctx context.Context, id string, archived bool) (*domain.ContactMessage, error)
	UnreadCount(ctx context.Context) (int64, error)
}
