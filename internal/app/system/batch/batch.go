// Package batch runs the content store rebuild commands: load the tool
// config, build a logger, optionally connect MongoDB for publishing, run
// one seeding operation and turn the outcome into an exit code.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/dalemusser/stratatour/internal/app/store/contentmongo"
	"github.com/dalemusser/stratatour/internal/app/system/seeding"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/stratatour/internal/app/system/toolconfig"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// Operation is one seeding entry point, such as seeding.Run.
type Operation func(ctx context.Context, opts seeding.Options, logger *zap.Logger) (seeding.Result, error)

// Main loads the environment and runs op. It returns the process exit
// code: 0 on success, 1 on any failure. Errors that happen before a logger
// exists are written to stderr.
func Main(ctx context.Context, name string, op Operation, stderr io.Writer) int {
	cfg, err := toolconfig.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	logger, err := toolconfig.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%s: build logger: %v\n", name, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	return Execute(ctx, cfg, op, logger.Named(name))
}

// Execute runs op with cfg and returns the exit code.
func Execute(ctx context.Context, cfg toolconfig.Config, op Operation, logger *zap.Logger) int {
	opts := seeding.Options{
		SourcePath: cfg.SourcePath,
		OutputDir:  cfg.ContentDir,
	}

	if cfg.PublishEnabled() {
		connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
		client, err := wafflemongo.ConnectWithPool(connectCtx, cfg.MongoURI, cfg.MongoDatabase, wafflemongo.DefaultPoolConfig())
		cancel()
		if err != nil {
			logger.Error("failed to connect to MongoDB for publishing", zap.Error(err))
			return 1
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warn("MongoDB disconnect failed", zap.Error(err))
			}
		}()
		opts.Publisher = contentmongo.NewPublisher(client.Database(cfg.MongoDatabase), logger)
		logger.Info("publishing to MongoDB", zap.String("database", cfg.MongoDatabase))
	}

	res, err := op(ctx, opts, logger)
	if err != nil {
		logger.Error("content rebuild failed", zap.Error(err))
		return 1
	}

	logger.Info("content rebuild complete",
		zap.Int("districts", res.Districts),
		zap.Int("comments_dropped", res.Comments),
		zap.Strings("replaced", res.Replaced),
		zap.Int("warnings", len(res.Warnings)),
		zap.Strings("written", res.Written))
	return 0
}
