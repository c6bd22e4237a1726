package database

import (
	"context"
	"fmt"
	"time"

	"dinehub/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the repositories.
const (
	CollectionOrders     = "orders"
	CollectionMenuItems  = "menu_items"
	CollectionCategories = "categories"
	CollectionUsers      = "users"
)

// Connect opens a MongoDB client, verifies the connection, and creates the
// indexes the repositories rely on.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) (*mongo.Database, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	logger.Info().
		Str("uri", cfg.URI).
		Str("database", cfg.Database).
		Msg("connecting to MongoDB")

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)

	if err := ensureIndexes(connectCtx, db); err != nil {
		return nil, nil, err
	}

	logger.Info().Msg("MongoDB connection established")

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}

	return db, closeFn, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		CollectionOrders: {
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		CollectionMenuItems: {
			Keys:    bson.D{{Key: "item_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		CollectionCategories: {
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_deleted", Value: false}}),
		},
		CollectionUsers: {
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for collection, index := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", collection, err)
		}
	}

	return nil
}
