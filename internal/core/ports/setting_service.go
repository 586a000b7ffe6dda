package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// SettingService exposes the public settings map and the admin mutations.
// All returns the settings collapsed into a key→value object, which is the
// shape the site frontend consumes.
type SettingService interface {
	All(ctx context.Context) (map[string]any, error)
	Get(ctx context.Context, key string) (*domain.SiteSetting, error)
	Upsert(ctx context.Context, key string, value any) (*domain.SiteSetting, error)
	BulkUpsert(ctx context.Context, values map[string]any) ([]domain.SiteSetting, error)
	Delete(ctx context.Context, key string) error
}
