// Package database provides MongoDB connection management and index
// bootstrap for the event catalog.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialive/event-catalog/internal/config"
)

// Connect establishes and validates a MongoDB client, retrying up to 5 times
// to accommodate containers starting up.
func Connect(ctx context.Context, cfg config.MongoDBConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second)

	var (
		client *mongo.Client
		err    error
	)
	for attempt := 1; attempt <= 5; attempt++ {
		client, err = mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			pingErr := client.Ping(pingCtx, nil)
			cancel()
			if pingErr == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
			err = pingErr
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect to mongodb: %w", err)
}

// EnsureIndexes creates the indexes the catalog relies on: the text index
// backing search, the unique eventId, and the unique (userId, eventId)
// favorite pair. Creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	eventIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "tags", Value: "text"},
			},
		},
	}
	if _, err := db.Collection("events").Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("create event indexes: %w", err)
	}

	favoriteIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "eventId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("favorites").Indexes().CreateOne(ctx, favoriteIndex); err != nil {
		return fmt.Errorf("create favorite index: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		return fmt.Errorf("create user index: %w", err)
	}
	return nil
}
