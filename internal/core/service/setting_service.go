package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// SettingsCache abstracts the Redis-backed cache of the public settings map.
// The cache is advisory: failures are logged and the store is consulted.
type SettingsCache interface {
	Get(ctx context.Context) (map[string]any, bool, error)
	Set(ctx context.Context, settings map[string]any) error
	Invalidate(ctx context.Context) error
}

// SettingService serves the public settings map with cache-aside reads and
// invalidates the cache on every mutation.
type SettingService struct {
	repo   ports.SettingRepository
	cache  SettingsCache
	logger zerolog.Logger
}

func NewSettingService(repo ports.SettingRepository, cache SettingsCache, logger zerolog.Logger) *SettingService {
	return &SettingService{repo: repo, cache: cache, logger: logger}
}

func (s *SettingService) All(ctx context.Context) (map[string]any, error) {
	if cached, hit, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("settings cache read failed, falling back to store")
	} else if hit {
		return cached, nil
	}

	settings, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}

	if err := s.cache.Set(ctx, out); err != nil {
		s.logger.Warn().Err(err).Msg("settings cache write failed")
	}
	return out, nil
}

func (s *SettingService) Get(ctx context.Context, key string) (*domain.SiteSetting, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *SettingService) Upsert(ctx context.Context, key string, value any) (*domain.SiteSetting, error) {
	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return setting, nil
}

func (s *SettingService) BulkUpsert(ctx context.Context, values map[string]any) ([]domain.SiteSetting, error) {
	out := make([]domain.SiteSetting, 0, len(values))
	for key, value := range values {
		setting, err := s.repo.Upsert(ctx, key, value)
		if err != nil {
			return nil, err
		}
		out = append(out, *setting)
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *SettingService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("settings cache invalidation failed")
	}
}
