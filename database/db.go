// Package db owns the MongoDB connection and the collections the service uses.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	GigsCollection  = "gigs"
	UsersCollection = "users"

	defaultTimeout = 5 * time.Second
)

// DB is a connected client bound to one database.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
	log      *zap.Logger
}

// Connect dials MongoDB, pings the primary and returns a handle to cfg.Database.
func Connect(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*DB, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo: empty uri")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, 2*cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("connected to mongodb", zap.String("database", cfg.Database))

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		timeout:  cfg.Timeout,
		log:      log,
	}, nil
}

// Collection returns a collection of the bound database.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.database.Collection(name)
}

// Database exposes the bound database, mostly for tests dropping it.
func (d *DB) Database() *mongo.Database {
	return d.database
}

// Ping checks that the primary is reachable.
func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	return d.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the client. Errors are logged, not returned.
func (d *DB) Disconnect(ctx context.Context) {
	if d == nil || d.client == nil {
		return
	}

	if err := d.client.Disconnect(ctx); err != nil {
		d.log.Error("failed to disconnect mongodb", zap.Error(err))
		return
	}
	d.log.Info("disconnected from mongodb")
}

const (
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// EnsureIndexes creates the indexes used by the gig and user queries. Index names are left
// to the server so they match indexes an existing database already carries; an index that
// exists under another name or with other options is kept and logged.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	if err := d.ensureIndexes(ctx, GigsCollection, gigIndexes()); err != nil {
		return err
	}
	return d.ensureIndexes(ctx, UsersCollection, userIndexes())
}

func (d *DB) ensureIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	indexes := d.Collection(collection).Indexes()

	for _, model := range models {
		_, err := indexes.CreateOne(ctx, model)
		switch {
		case err == nil:
		case isIndexConflict(err):
			d.log.Warn("keeping existing index",
				zap.String("collection", collection),
				zap.Any("keys", model.Keys),
				zap.Error(err),
			)
		default:
			return fmt.Errorf("mongo ensure %s indexes: %w", collection, err)
		}
	}

	return nil
}

// gigIndexes: the category/subCategory text index is the one the gigs collection has
// always had; listing filters on status+category+subCategory; dashboards sort by owner
// and updatedAt.
func gigIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: "text"}, {Key: "subCategory", Value: "text"}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}, {Key: "subCategory", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
}

// userIndexes covers the bookmark cleanup on gig delete. Identity indexes (googleId, email)
// belong to the sign-in service that creates users.
func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookmarkedGigs", Value: 1}}},
	}
}

func isIndexConflict(err error) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorCode(codeIndexOptionsConflict) || se.HasErrorCode(codeIndexKeySpecsConflict)
}
