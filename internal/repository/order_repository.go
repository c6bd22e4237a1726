package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinehub/internal/database"
	"dinehub/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the OrderRepository interface using MongoDB.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(database.CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Insert persists a new order document.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.OrderID).
		Int("item_count", len(order.Items)).
		Msg("order inserted")

	return nil
}

// FindByID retrieves an order by its generated identifier.
func (r *orderRepository) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("order_id", orderID).Msg("order not found")
			return nil, model.ErrOrderNotFound
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to find order")
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return &order, nil
}

// Update replaces the order document conditionally on the version the caller
// read, so two concurrent read-modify-write cycles cannot silently overwrite
// each other. The whole aggregate is replaced in one write, keeping items,
// total price and status consistent with each other.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	filter := bson.M{
		"order_id": order.OrderID,
		"version":  order.Version,
	}

	updated := *order
	updated.Version = order.Version + 1
	updated.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, filter, &updated)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("failed to update order")
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.MatchedCount == 0 {
		// Distinguish a vanished order from a concurrent writer.
		count, countErr := r.collection.CountDocuments(ctx, bson.M{"order_id": order.OrderID})
		if countErr != nil {
			return fmt.Errorf("failed to update order: %w", countErr)
		}
		if count == 0 {
			return model.ErrOrderNotFound
		}

		r.logger.Warn().
			Str("order_id", order.OrderID).
			Int64("version", order.Version).
			Msg("stale order version, concurrent update detected")
		return model.ErrOrderConflict
	}

	order.Version = updated.Version
	order.UpdatedAt = updated.UpdatedAt

	r.logger.Debug().
		Str("order_id", order.OrderID).
		Int64("version", order.Version).
		Msg("order updated")

	return nil
}

// FindAll retrieves every order, newest first.
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
