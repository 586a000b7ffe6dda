package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

const experiencesCollection = "experiences"

type ExperienceRepository struct {
	coll *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{coll: db.Collection(experiencesCollection)}
}

func (r *ExperienceRepository) List(ctx context.Context, includeInactive bool) ([]domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !includeInactive {
		filter["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	experiences := []domain.Experience{}
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}
	return experiences, nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Experience
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}
	return &e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *e
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}
	return &created, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, id string, e *domain.Experience) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"company":             e.Company,
		"company_en":          e.CompanyEn,
		"role":                e.Role,
		"role_en":             e.RoleEn,
		"period":              e.Period,
		"responsibilities":    e.Responsibilities,
		"responsibilities_en": e.ResponsibilitiesEn,
		"technologies":        e.Technologies,
		"display_order":       e.DisplayOrder,
		"is_active":           e.IsActive,
		"is_current":          e.IsCurrent,
		"updated_at":          e.UpdatedAt,
	}}

	var updated domain.Experience
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return &updated, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}
