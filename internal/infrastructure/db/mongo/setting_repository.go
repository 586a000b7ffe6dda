package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

const settingsCollection = "site_settings"

// SettingRepository persists site settings keyed on _id.
type SettingRepository struct {
	coll *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{coll: db.Collection(settingsCollection)}
}

func (r *SettingRepository) All(ctx context.Context) ([]domain.SiteSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings := []domain.SiteSetting{}
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*domain.SiteSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.SiteSetting
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, fmt.Errorf("find setting: %w", err)
	}
	return &s, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, key string, value any) (*domain.SiteSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": now}},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return &domain.SiteSetting{Key: key, Value: value, UpdatedAt: now}, nil
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSettingNotFound
	}
	return nil
}
