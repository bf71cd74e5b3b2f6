// Package mongo opens the MongoDB connection used when DATABASE_URL is a
// mongodb:// or mongodb+srv:// URL.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// IsMongoURL reports whether raw uses a MongoDB scheme.
func IsMongoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return true
	default:
		return false
	}
}

// DatabaseName returns the database named in the URL path, or fallback.
func DatabaseName(raw, fallback string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fallback
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return fallback
}

// Connect opens a client and pings the primary within timeout.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	slog.Info("MongoDB connection successful")
	return client, nil
}

// Ping checks the primary.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the client.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}
