package seeding

import (
	"context"
	"fmt"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/store/contentfile"
	"github.com/dalemusser/stratatour/internal/app/system/reconcile"
	"github.com/dalemusser/stratatour/internal/app/system/shape"
	"go.uber.org/zap"
)

// Publisher copies written collections to a second store.
type Publisher interface {
	Publish(ctx context.Context, ds *content.Dataset, collections ...string) error
}

// Options configures a seed run.
type Options struct {
	// SourcePath is the primary district source file.
	SourcePath string
	// OutputDir is the static content store directory.
	OutputDir string
	// Publisher, when set, receives the same collections after the files
	// are committed.
	Publisher Publisher
}

// Result summarizes a seed run.
type Result struct {
	Comments  int
	Replaced  []string
	Warnings  []string
	Written   []string
	Districts int
}

// districtCollections are rewritten when only districts change: the
// districts themselves and the tables derived from them.
var districtCollections = []string{
	content.CollDistricts,
	content.CollSearchIndex,
	content.CollCollectionsMetadata,
}

// Run rebuilds every collection in the content store. The primary source
// must exist. Nothing is written unless every collection validates and
// serializes.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (Result, error) {
	return run(ctx, opts, logger, nil)
}

// UpdateDistricts rebuilds only the district collection and the tables
// derived from it, leaving the other collection files alone.
func UpdateDistricts(ctx context.Context, opts Options, logger *zap.Logger) (Result, error) {
	return run(ctx, opts, logger, districtCollections)
}

func run(ctx context.Context, opts Options, logger *zap.Logger, only []string) (Result, error) {
	var res Result

	primary, comments, err := reconcile.ReadPrimary(opts.SourcePath)
	if err != nil {
		logger.Error("failed to read primary district source",
			zap.String("path", opts.SourcePath),
			zap.Error(err))
		return res, err
	}
	res.Comments = comments

	merged := reconcile.Merge(primary, reconcile.Supplementary(), logger)
	res.Replaced = merged.Replaced
	res.Districts = len(merged.Districts)
	logger.Info("merged districts",
		zap.Int("primary", len(primary)),
		zap.Int("comments_dropped", comments),
		zap.Int("supplementary", len(reconcile.Supplementary())),
		zap.Int("total", len(merged.Districts)))

	ds := Dataset(merged.Districts)

	report := shape.Check(ds)
	res.Warnings = report.Warnings
	for _, w := range report.Warnings {
		logger.Warn("content reference", zap.String("detail", w))
	}
	if err := report.Err(); err != nil {
		logger.Error("content failed validation", zap.Strings("problems", report.Errors))
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	written, err := write(opts.OutputDir, ds, only)
	if err != nil {
		logger.Error("failed to write content store", zap.String("dir", opts.OutputDir), zap.Error(err))
		return res, err
	}
	res.Written = written
	logger.Info("content store written", zap.String("dir", opts.OutputDir), zap.Int("files", len(written)))

	if opts.Publisher != nil {
		if err := opts.Publisher.Publish(ctx, ds, only...); err != nil {
			logger.Error("failed to publish content", zap.Error(err))
			return res, fmt.Errorf("publish: %w", err)
		}
		logger.Info("content published to database")
	}

	return res, nil
}

// write stages the selected collections (all when only is empty) and
// commits them together.
func write(dir string, ds *content.Dataset, only []string) ([]string, error) {
	w, err := contentfile.NewWriter(dir)
	if err != nil {
		return nil, err
	}

	entries := ds.Entries()
	if len(only) > 0 {
		entries = entries[:0]
		for _, name := range only {
			e, _ := ds.Entry(name)
			entries = append(entries, e)
		}
	}

	for _, e := range entries {
		if err := w.Stage(e.Name, e.Value); err != nil {
			w.Abort()
			return nil, err
		}
	}
	staged := w.Staged()
	if err := w.Commit(); err != nil {
		return nil, err
	}
	return staged, nil
}

