// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	authadapters "social_backend/internal/feature/auth/adapters"
	authentity "social_backend/internal/feature/auth/domain/entity"
	authusecase "social_backend/internal/feature/auth/usecase"
	commentadapters "social_backend/internal/feature/comment/adapters"
	commententity "social_backend/internal/feature/comment/domain/entity"
	commentusecase "social_backend/internal/feature/comment/usecase"
	postadapters "social_backend/internal/feature/post/adapters"
	postentity "social_backend/internal/feature/post/domain/entity"
	postusecase "social_backend/internal/feature/post/usecase"
	profileusecase "social_backend/internal/feature/profile/usecase"
	"social_backend/internal/platform/config"
	"social_backend/internal/platform/db"
	"social_backend/internal/platform/mongo"
)

// UserStore is the user persistence needed by both the auth and profile features.
type UserStore interface {
	authusecase.UserRepository
	profileusecase.UserRepository
}

// Stores groups the repositories backed by one database connection.
type Stores struct {
	Users    UserStore
	Posts    postusecase.PostRepository
	Comments commentusecase.CommentRepository

	// Ping checks the database for /readyz.
	Ping func(ctx context.Context) error
	// Close releases the connection.
	Close func(ctx context.Context) error
}

// Models lists the tables created by AutoMigrate.
var Models = []any{&authentity.User{}, &postentity.Post{}, &commententity.Comment{}}

// OpenStores selects the store by DATABASE_URL scheme.
// mongodb:// and mongodb+srv:// use MongoDB; postgres:// and sqlite:// use GORM.
func OpenStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	if mongo.IsMongoURL(cfg.DatabaseURL) {
		return openMongoStores(ctx, cfg)
	}

	dbCfg, err := db.ParseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	dbCfg.ConnectTimeout = cfg.DBConnectTimeout
	dbCfg.Debug = !cfg.IsProduction() && cfg.LogLevel == "debug"

	gdb, err := db.Open(dbCfg, cfg.RunMigrations, Models...)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dbCfg.Driver, err)
	}
	slog.Info("database connected", "driver", dbCfg.Driver, "migrated", cfg.RunMigrations)
	return NewGormStores(gdb), nil
}

// NewGormStores builds the repositories on an open GORM connection.
func NewGormStores(gdb *gorm.DB) *Stores {
	return &Stores{
		Users:    authadapters.NewUserGorm(gdb),
		Posts:    postadapters.NewPostGorm(gdb),
		Comments: commentadapters.NewCommentGorm(gdb),
		Ping:     func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		Close:    func(context.Context) error { return db.Close(gdb) },
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func openMongoStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	client, err := mongo.Connect(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		return nil, err
	}
	database := client.Database(mongo.DatabaseName(cfg.DatabaseURL, cfg.MongoDatabase))

	stores, err := newMongoStores(ctx, client, database, cfg.RunMigrations)
	if err != nil {
		_ = mongo.Disconnect(context.Background(), client)
		return nil, err
	}
	slog.Info("database connected", "driver", "mongodb", "database", database.Name())
	return stores, nil
}

func newMongoStores(ctx context.Context, client *mongodriver.Client, database *mongodriver.Database, ensureIndexes bool) (*Stores, error) {
	users := authadapters.NewUserMongo(database)
	posts := postadapters.NewPostMongo(database)
	comments := commentadapters.NewCommentMongo(database)

	if ensureIndexes {
		ictx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		for _, ix := range []indexer{users, posts, comments} {
			if err := ix.EnsureIndexes(ictx); err != nil {
				return nil, err
			}
		}
	}

	return &Stores{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Ping:     func(ctx context.Context) error { return mongo.Ping(ctx, client) },
		Close:    func(ctx context.Context) error { return mongo.Disconnect(ctx, client) },
	}, nil
}
