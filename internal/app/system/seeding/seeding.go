// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	cmscontentstore "github.com/dalemusser/stratatour/internal/app/store/cmscontent"
	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/store/contentfile"
	"github.com/dalemusser/stratatour/internal/app/store/contentmongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default editor content if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedRegionContent(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedRegionContent creates the region's editor content if it doesn't exist.
func seedRegionContent(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := cmscontentstore.New(db)
	ec := regionContent()

	exists, err := store.Exists(ctx, ec.Scope, ec.Slug)
	if err != nil {
		logger.Error("failed to check if region content exists",
			zap.String("slug", ec.Slug),
			zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	if err := store.Insert(ctx, ec); err != nil {
		logger.Error("failed to seed region content",
			zap.String("slug", ec.Slug),
			zap.Error(err))
		return err
	}
	logger.Info("seeded default region content", zap.String("slug", ec.Slug))
	return nil
}

// SeedContent publishes the static content store in dir to the Mongo
// content collections when the states collection is empty. It reports
// whether anything was published. Existing Mongo content is never
// replaced; use the seed command for that.
func SeedContent(ctx context.Context, db *mongo.Database, dir string, logger *zap.Logger) (bool, error) {
	n, err := db.Collection(content.CollStates).CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("failed to count content states", zap.Error(err))
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	ds, err := content.LoadDataset(ctx, contentfile.NewSource(dir), logger)
	if err != nil {
		return false, err
	}
	if len(ds.States) == 0 {
		logger.Warn("no static content to seed MongoDB from", zap.String("dir", dir))
		return false, nil
	}

	if err := contentmongo.NewPublisher(db, logger).Publish(ctx, ds); err != nil {
		logger.Error("failed to seed content collections", zap.Error(err))
		return false, err
	}
	logger.Info("seeded content collections from static store",
		zap.String("dir", dir),
		zap.Int("states", len(ds.States)),
		zap.Int("districts", len(ds.Districts)))
	return true, nil
}
