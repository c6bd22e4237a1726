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

// menuRepository implements the MenuRepository interface using MongoDB.
type menuRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewMenuRepository creates a new MongoDB-backed menu repository.
func NewMenuRepository(db *mongo.Database, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		collection: db.Collection(database.CollectionMenuItems),
		logger:     logger.With().Str("repository", "menu").Logger(),
	}
}

// Create persists a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		r.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to insert menu item")
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	r.logger.Debug().Str("item_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return nil
}

// Update replaces a non-deleted menu item.
func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	filter := bson.M{"item_id": item.ID, "is_deleted": false}

	result, err := r.collection.ReplaceOne(ctx, filter, item)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", item.ID).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrMenuItemNotFound
	}

	return nil
}

// GetByID retrieves a single non-deleted menu item.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"item_id": id, "is_deleted": false}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("item_id", id).Msg("menu item not found")
			return nil, model.ErrMenuItemNotFound
		}
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to find menu item")
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return &item, nil
}

// GetByIDs retrieves the non-deleted menu items for the given IDs in one
// batched read.
func (r *menuRepository) GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	filter := bson.M{
		"item_id":    bson.M{"$in": ids},
		"is_deleted": false,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query menu items by IDs")
		return nil, fmt.Errorf("failed to query menu items by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode menu items")
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

// List retrieves non-deleted menu items matching the filter.
func (r *menuRepository) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	query := bson.M{"is_deleted": false}
	if filter.CategoryID != nil {
		query["category_id"] = *filter.CategoryID
	}
	if filter.Veg != nil {
		query["veg"] = *filter.Veg
	}
	if filter.Available != nil {
		query["availability"] = *filter.Available
	}
	if filter.Popular != nil {
		query["popular"] = *filter.Popular
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode menu items")
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

// SetAvailability flips the availability flag on a menu item.
func (r *menuRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"item_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"availability": available}},
	)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to update availability")
		return fmt.Errorf("failed to update availability: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrMenuItemNotFound
	}

	return nil
}

// SoftDelete marks a menu item deleted without removing the document, so
// existing orders keep a resolvable-at-the-time reference trail.
func (r *menuRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"item_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true}},
	)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to soft delete menu item")
		return fmt.Errorf("failed to soft delete menu item: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrMenuItemNotFound
	}

	r.logger.Info().Str("item_id", id).Msg("menu item soft deleted")
	return nil
}
