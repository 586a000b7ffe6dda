package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// SettingRepository persists site settings keyed by name.
type SettingRepository interface {
	All(ctx context.Context) ([]domain.SiteSetting, error)
	FindByKey(ctx context.Context, key string) (*domain.SiteSetting, error)
	Upsert(ctx context.Context, key string, value any) (*domain.SiteSetting, error)
	Delete(ctx context.Context, key string) error
}
