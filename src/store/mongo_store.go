package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/models"
)

type MongoProfileStore struct {
	coll *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{coll: db.Collection("profiles")}
}

// EnsureIndexes creates the unique index backing the one-profile-per-owner
// invariant. Called once at startup.
func (s *MongoProfileStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: create profile index: %v", lib.ErrStore, err)
	}
	return nil
}

func (s *MongoProfileStore) GetByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"user": user})
}

func (s *MongoProfileStore) GetAll(ctx context.Context) ([]models.Profile, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find profiles: %v", lib.ErrStore, err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("%w: decode profiles: %v", lib.ErrStore, err)
	}
	return profiles, nil
}

func (s *MongoProfileStore) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	update := bson.M{
		"$set": bson.M{
			"user":           p.User,
			"company":        p.Company,
			"website":        p.Website,
			"location":       p.Location,
			"status":         p.Status,
			"skills":         p.Skills,
			"bio":            p.Bio,
			"githubusername": p.GithubUsername,
			"social":         p.Social,
			"updatedAt":      p.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt":  p.UpdatedAt,
			"experience": []models.Experience{},
			"education":  []models.Education{},
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result models.Profile
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"user": p.User}, update, opts).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert profile: %v", lib.ErrStore, err)
	}
	return &result, nil
}

func (s *MongoProfileStore) Replace(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var result models.Profile
	err := s.coll.FindOneAndReplace(ctx, bson.M{"user": p.User}, p, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("%w: replace profile: %v", lib.ErrStore, err)
	}
	return &result, nil
}

func (s *MongoProfileStore) FindByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"experience._id": id})
}

func (s *MongoProfileStore) FindByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"education._id": id})
}

func (s *MongoProfileStore) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"user": user}); err != nil {
		return fmt.Errorf("%w: delete profile: %v", lib.ErrStore, err)
	}
	return nil
}

func (s *MongoProfileStore) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var profile models.Profile
	err := s.coll.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find profile: %v", lib.ErrStore, err)
	}
	return &profile, nil
}

type MongoPostStore struct {
	coll *mongo.Collection
}

func NewMongoPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{coll: db.Collection("posts")}
}

func (s *MongoPostStore) DeleteByAuthor(ctx context.Context, user primitive.ObjectID) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"user": user}); err != nil {
		return fmt.Errorf("%w: delete posts: %v", lib.ErrStore, err)
	}
	return nil
}

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection("users")}
}

func (s *MongoUserStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: insert user: %v", lib.ErrStore, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.Id = oid
	}
	return u, nil
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%w: delete user: %v", lib.ErrStore, err)
	}
	return nil
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", lib.ErrStore, err)
	}
	return &user, nil
}
