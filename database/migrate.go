package database

import (
	"context"
	"fmt"

	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names
const (
	UserEmailIndex     = "uniq_users_email"
	TutorCategoryIndex = "idx_tutors_categories"
)

// EnsureIndexes creates the indexes the application relies on. The unique
// email index is what actually enforces one account per address.
func EnsureIndexes(ctx context.Context, m *Mongo) error {
	db, err := m.Database(ctx)
	if err != nil {
		return err
	}

	indexes := map[string]mongo.IndexModel{
		models.UsersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(UserEmailIndex).SetUnique(true),
		},
		models.TutorsCollection: {
			Keys:    bson.D{{Key: "categories", Value: 1}},
			Options: options.Index().SetName(TutorCategoryIndex),
		},
	}

	for collection, model := range indexes {
		name, err := db.Collection(collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create index on %s: %w", collection, err)
		}
		logger.Info("index ensured", "collection", collection, "index", name)
	}

	return nil
}
