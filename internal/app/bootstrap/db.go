// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	contentstore "github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/store/contentfile"
	"github.com/dalemusser/stratatour/internal/app/store/contentmongo"
	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/indexes"
	"github.com/dalemusser/stratatour/internal/app/system/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/seeding"
	"github.com/dalemusser/stratatour/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// ConnectDB connects to databases or other backends.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema and
// Startup. It establishes:
//   - the MongoDB connection holding editor content and the audit trail
//   - the content repository over the configured content source
//   - the upload storage backend (local disk or S3/CloudFront)
//
// Nothing is read from the content source here; the repository loads on
// first use.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	// Configure MongoDB connection pool
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	// Content repository over the configured source
	var src contentstore.Source
	switch appCfg.ContentSource {
	case ContentSourceMongo:
		src = contentmongo.NewSource(db)
	default:
		src = contentfile.NewSource(appCfg.ContentDir)
	}
	repo := contentstore.New(src, logger)
	logger.Info("configured content source",
		zap.String("source", appCfg.ContentSource),
		zap.String("dir", appCfg.ContentDir),
	)

	// Initialize upload storage
	var store storage.Store
	switch appCfg.StorageType {
	case "s3":
		store, err = storage.NewS3(ctx, storage.S3Config{
			Region:                   appCfg.StorageS3Region,
			Bucket:                   appCfg.StorageS3Bucket,
			Prefix:                   appCfg.StorageS3Prefix,
			CloudFrontURL:            appCfg.StorageCFURL,
			CloudFrontKeyPairID:      appCfg.StorageCFKeyPairID,
			CloudFrontPrivateKeyPath: appCfg.StorageCFKeyPath,
		})
		if err != nil {
			return DBDeps{}, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		logger.Info("initialized S3/CloudFront file storage",
			zap.String("bucket", appCfg.StorageS3Bucket),
			zap.String("prefix", appCfg.StorageS3Prefix),
		)
	case "local", "":
		store, err = storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.StorageLocalURL,
		})
		if err != nil {
			return DBDeps{}, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		logger.Info("initialized local file storage",
			zap.String("path", appCfg.StorageLocalPath),
			zap.String("url", appCfg.StorageLocalURL),
		)
	default:
		return DBDeps{}, fmt.Errorf("unknown storage type: %s", appCfg.StorageType)
	}

	var stats *requeststats.Recorder
	if appCfg.StatsEnabled {
		stats = requeststats.NewRecorder(statsstore.New(db), logger, appCfg.StatsBucket)
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Content:       repo,
		FileStorage:   store,
		Stats:         stats,
	}, nil
}

// EnsureSchema sets up collections, validators, indexes and seed data.
//
// This runs after ConnectDB succeeds but before Startup and before the HTTP
// handler is built:
//   - collections and JSON-Schema validators (cms_content, culture, audit)
//   - indexes for the CMS and the Mongo content collections
//   - the default region editor content, if none exists
//   - with content_source "mongo", the content collections from the static
//     store when they are empty
//
// The context has a timeout based on coreCfg.IndexBootTimeout, so long-running
// work should respect context cancellation.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// Ensure collections exist and attach JSON-Schema validators.
	// This runs first so indexes can be created on existing collections.
	logger.Info("ensuring collections and validators")
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure validators", zap.Error(err))
		return err
	}

	// Ensure database indexes for query performance.
	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	// Seed default editor content
	logger.Info("seeding default data")
	if err := seeding.SeedAll(ctx, db, logger); err != nil {
		logger.Error("failed to seed default data", zap.Error(err))
		return err
	}

	if appCfg.ContentSource == ContentSourceMongo && appCfg.SeedOnStartup {
		if _, err := seeding.SeedContent(ctx, db, appCfg.ContentDir, logger); err != nil {
			return err
		}
	}

	logger.Info("database schema ensured successfully")
	return nil
}
