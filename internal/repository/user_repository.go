package repository

import (
	"context"
	"errors"
	"fmt"

	"dinehub/internal/database"
	"dinehub/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the UserRepository interface using MongoDB.
type userRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewUserRepository creates a new MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database, logger zerolog.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection(database.CollectionUsers),
		logger:     logger.With().Str("repository", "user").Logger(),
	}
}

// Create persists a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	r.logger.Debug().Str("user_id", user.ID).Msg("user created")
	return nil
}

// Update replaces a user document.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": user.ID}, user)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update user")
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// GetByID retrieves a single user.
func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"user_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to find user")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// List retrieves all users.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode users")
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// Delete removes a user document.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.DeletedCount == 0 {
		return model.ErrUserNotFound
	}

	r.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
