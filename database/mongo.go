package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo bundles the client and the two collections the service works with.
// It is constructed once in main and passed down; there is no package-level
// connection state.
type Mongo struct {
	Client   *mongo.Client
	DB       *mongo.Database
	Products *mongo.Collection
	Users    *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Mongo{
		Client:   client,
		DB:       db,
		Products: db.Collection("products"),
		Users:    db.Collection("users"),
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
