package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settingsKey = "settings:all"
	settingsTTL = 5 * time.Minute
)

// SettingsCache holds the public settings map as a single JSON blob. It backs
// the hottest unauthenticated read (GET /v1/settings); writers invalidate it
// after every mutation.
type SettingsCache struct {
	client *redis.Client
}

func NewSettingsCache(client *redis.Client) *SettingsCache {
	return &SettingsCache{client: client}
}

// Get returns the cached map and whether the key was present.
func (c *SettingsCache) Get(ctx context.Context) (map[string]any, bool, error) {
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("settings cache get: %w", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		// A corrupt entry counts as a miss; the writer will replace it.
		return nil, false, nil
	}
	return settings, true, nil
}

func (c *SettingsCache) Set(ctx context.Context, settings map[string]any) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("settings cache marshal: %w", err)
	}
	return c.client.Set(ctx, settingsKey, raw, settingsTTL).Err()
}

func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, settingsKey).Err()
}
