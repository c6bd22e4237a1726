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

// categoryRepository implements the CategoryRepository interface using MongoDB.
type categoryRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewCategoryRepository creates a new MongoDB-backed category repository.
func NewCategoryRepository(db *mongo.Database, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		collection: db.Collection(database.CollectionCategories),
		logger:     logger.With().Str("repository", "category").Logger(),
	}
}

// Create persists a new category. Name uniqueness is enforced by the partial
// unique index on non-deleted categories.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrCategoryExists
		}
		r.logger.Error().Err(err).Str("name", category.Name).Msg("failed to insert category")
		return fmt.Errorf("failed to insert category: %w", err)
	}

	r.logger.Debug().Str("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return nil
}

// Update replaces a non-deleted category.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	filter := bson.M{"category_id": category.ID, "is_deleted": false}

	result, err := r.collection.ReplaceOne(ctx, filter, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrCategoryExists
		}
		r.logger.Error().Err(err).Str("category_id", category.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

// GetByID retrieves a single non-deleted category.
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := r.collection.FindOne(ctx, bson.M{"category_id": id, "is_deleted": false}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCategoryNotFound
		}
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to find category")
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// List retrieves all non-deleted categories.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"is_deleted": false}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode categories")
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

// SoftDelete marks a category deleted without removing the document.
func (r *categoryRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"category_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true}},
	)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to soft delete category")
		return fmt.Errorf("failed to soft delete category: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrCategoryNotFound
	}

	r.logger.Info().Str("category_id", id).Msg("category soft deleted")
	return nil
}
