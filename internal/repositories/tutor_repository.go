package repositories

import (
	"context"
	"errors"
	"time"

	"tutorlux_backend/database"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrTutorNotFound = errors.New("tutor not found")

type TutorRepository interface {
	// FindByCategory returns at most limit tutors whose categories contain category.
	FindByCategory(ctx context.Context, category string, limit int64) ([]models.Tutor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tutor, error)
	Create(ctx context.Context, tutor *models.Tutor) error
}

type TutorRepositoryImpl struct {
	db *database.Mongo
}

func NewTutorRepository(db *database.Mongo) TutorRepository {
	return &TutorRepositoryImpl{db: db}
}

func (r *TutorRepositoryImpl) FindByCategory(ctx context.Context, category string, limit int64) ([]models.Tutor, error) {
	start := time.Now()

	coll, err := r.db.Collection(ctx, models.TutorsCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"categories": category}, options.Find().SetLimit(limit))
	if err != nil {
		logger.DBLog("find_by_category", models.TutorsCollection, time.Since(start), err)
		return nil, err
	}
	defer cursor.Close(ctx)

	tutors := make([]models.Tutor, 0)
	err = cursor.All(ctx, &tutors)
	logger.DBLog("find_by_category", models.TutorsCollection, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return tutors, nil
}

func (r *TutorRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tutor, error) {
	coll, err := r.db.Collection(ctx, models.TutorsCollection)
	if err != nil {
		return nil, err
	}

	var tutor models.Tutor
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tutor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTutorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}

func (r *TutorRepositoryImpl) Create(ctx context.Context, tutor *models.Tutor) error {
	coll, err := r.db.Collection(ctx, models.TutorsCollection)
	if err != nil {
		return err
	}

	if tutor.ID.IsZero() {
		tutor.ID = primitive.NewObjectID()
	}
	if tutor.CreatedAt.IsZero() {
		tutor.CreatedAt = time.Now().UTC()
	}

	_, err = coll.InsertOne(ctx, tutor)
	return err
}
