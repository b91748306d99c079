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

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserChanges lists the fields a profile update may touch. A nil field is
// left unchanged. An empty Phone removes the stored phone.
type UserChanges struct {
	Email        *string
	FirstName    *string
	LastName     *string
	Phone        *string
	PasswordHash *string
}

func (c UserChanges) IsEmpty() bool {
	return c.Email == nil && c.FirstName == nil && c.LastName == nil &&
		c.Phone == nil && c.PasswordHash == nil
}

func (c UserChanges) document() bson.M {
	set := bson.M{}
	unset := bson.M{}

	if c.Email != nil {
		set["email"] = *c.Email
	}
	if c.FirstName != nil {
		set["firstName"] = *c.FirstName
	}
	if c.LastName != nil {
		set["lastName"] = *c.LastName
	}
	if c.PasswordHash != nil {
		set["passwordHash"] = *c.PasswordHash
	}
	if c.Phone != nil {
		if *c.Phone == "" {
			unset["phone"] = ""
		} else {
			set["phone"] = *c.Phone
		}
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailTakenByOther reports whether email belongs to a user other than id.
	EmailTakenByOther(ctx context.Context, email string, id primitive.ObjectID) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, changes UserChanges) error
}

type UserRepositoryImpl struct {
	db *database.Mongo
}

func NewUserRepository(db *database.Mongo) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) collection(ctx context.Context) (*mongo.Collection, error) {
	return r.db.Collection(ctx, models.UsersCollection)
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, "find_by_id", bson.M{"_id": id})
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "find_by_email", bson.M{"email": email})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, op string, filter bson.M) (*models.User, error) {
	start := time.Now()

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	logger.DBLog(op, models.UsersCollection, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) EmailTakenByOther(ctx context.Context, email string, id primitive.ObjectID) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	filter := bson.M{"email": email, "_id": bson.M{"$ne": id}}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	var found bson.M
	err = coll.FindOne(ctx, filter, opts).Decode(&found)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

// Create inserts user, assigning an ID when it has none. A duplicate email,
// detected up front or by the unique index, yields ErrUserAlreadyExists.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	start := time.Now()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	if err := coll.FindOne(ctx, bson.M{"email": user.Email}).Err(); err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err = coll.InsertOne(ctx, user)
	logger.DBLog("insert", models.UsersCollection, time.Since(start), err)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, changes UserChanges) error {
	if changes.IsEmpty() {
		return nil
	}
	start := time.Now()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, changes.document())
	logger.DBLog("update", models.UsersCollection, time.Since(start), err)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUserAlreadyExists
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
