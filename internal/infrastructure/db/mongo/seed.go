package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// index on users.email is what backs the duplicate-email rule.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	for _, coll := range []string{projectsCollection, experiencesCollection, certificationsCollection} {
		_, err := db.Collection(coll).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "display_order", Value: 1}}},
			{Keys: bson.D{{Key: "is_active", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("%s indexes: %w", coll, err)
		}
	}

	_, err = db.Collection(contactCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("contact index: %w", err)
	}
	return nil
}

// Seed provisions first-run data: the default admin account and the default
// site settings. Existing records are left untouched, so it is safe to run on
// every startup.
func Seed(ctx context.Context, db *mongo.Database, adminEmail, adminPassword string, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if adminEmail != "" && adminPassword != "" {
		if err := seedAdmin(ctx, db, adminEmail, adminPassword, log); err != nil {
			return err
		}
	} else {
		log.Debug().Msg("admin credentials not configured, skipping admin seed")
	}

	return seedDefaultSettings(ctx, db, log)
}

func seedAdmin(ctx context.Context, db *mongo.Database, email, password string, log zerolog.Logger) error {
	users := db.Collection(usersCollection)

	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	now := time.Now().UTC().Unix()
	_, err = users.InsertOne(ctx, userDoc{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{string(domain.RoleUser), string(domain.RoleAdmin)},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("seed admin insert: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded default admin user")
	return nil
}

func seedDefaultSettings(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	settings := db.Collection(settingsCollection)

	defaults := map[string]any{
		"logo_text":     "Portfolio",
		"hero_title":    "Welcome to my portfolio",
		"hero_subtitle": "Creative Developer",
		"section_visibility": bson.M{
			"hero":           true,
			"projects":       true,
			"experience":     true,
			"certifications": true,
			"contact":        true,
		},
	}

	now := time.Now().UTC()
	for key, value := range defaults {
		_, err := settings.UpdateOne(ctx,
			bson.M{"_id": key},
			bson.M{"$setOnInsert": bson.M{"value": value, "updated_at": now}},
			options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	log.Debug().Int("count", len(defaults)).Msg("default settings ensured")
	return nil
}
