// Package database owns the MongoDB connection shared by every repository.
//
// One Store is opened at process start, handed to repository constructors,
// and closed on shutdown:
//
//	store, err := database.Connect(ctx, config.DatabaseURL(), config.DatabaseName())
//	if err != nil { ... }
//	defer store.Close(context.Background())
//
//	products := repositories.NewProductRepository(store.DB)
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second
	maxPoolSize    = 25
)

// Store wraps a connected client and the application database.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens the client and verifies it with a ping. It returns an error
// instead of exiting so the caller decides how to shut down.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(maxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Store{Client: client, DB: client.Database(dbName)}, nil
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.DB.Name()
}

// CollectionNames lists the collections of the application database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.DB.ListCollectionNames(ctx, bson.D{})
}

// Close disconnects the client. Safe on a nil Store.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.Client.Disconnect(ctx)
}
