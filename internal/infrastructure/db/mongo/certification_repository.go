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

const certificationsCollection = "certifications"

type CertificationRepository struct {
	coll *mongo.Collection
}

func NewCertificationRepository(db *mongo.Database) *CertificationRepository {
	return &CertificationRepository{coll: db.Collection(certificationsCollection)}
}

func (r *CertificationRepository) List(ctx context.Context, includeInactive bool) ([]domain.Certification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !includeInactive {
		filter["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}

	certifications := []domain.Certification{}
	if err := cursor.All(ctx, &certifications); err != nil {
		return nil, fmt.Errorf("decode certifications: %w", err)
	}
	return certifications, nil
}

func (r *CertificationRepository) FindByID(ctx context.Context, id string) (*domain.Certification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Certification
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("find certification: %w", err)
	}
	return &c, nil
}

func (r *CertificationRepository) Create(ctx context.Context, c *domain.Certification) (*domain.Certification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *c
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert certification: %w", err)
	}
	return &created, nil
}

func (r *CertificationRepository) Update(ctx context.Context, id string, c *domain.Certification) (*domain.Certification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":          c.Title,
		"title_en":       c.TitleEn,
		"issuer":         c.Issuer,
		"issue_date":     c.IssueDate,
		"credential_id":  c.CredentialID,
		"credential_url": c.CredentialURL,
		"display_order":  c.DisplayOrder,
		"is_active":      c.IsActive,
		"updated_at":     c.UpdatedAt,
	}}

	var updated domain.Certification
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("update certification: %w", err)
	}
	return &updated, nil
}

func (r *CertificationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCertificationNotFound
	}
	return nil
}
