// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// It applies the STRATATOUR_TIMEOUT_* overrides, prunes request stats past
// their retention and warms the content
// repository so the first visitor does not pay for the load. A content store
// that fails to load is logged, not fatal: the content API answers 500 and
// /ready reports not ready until the process is restarted with good content,
// while the CMS stays available.
//
// The context will be cancelled if the process is asked to shut down while
// Startup is running; honor it in any long-running work.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(EnvVarPrefix); n > 0 {
		logger.Info("applied timeout overrides", zap.Int("count", n), zap.Any("timeouts", timeouts.Current()))
	}

	if appCfg.StatsEnabled && appCfg.StatsRetention > 0 {
		pruneCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "prune request stats")
		n, err := statsstore.New(deps.MongoDatabase).DeleteOlderThan(pruneCtx, time.Now().Add(-appCfg.StatsRetention))
		cancel()
		if err != nil {
			logger.Warn("failed to prune request stats", zap.Error(err))
		} else if n > 0 {
			logger.Info("pruned request stats", zap.Int64("buckets", n))
		}
	}

	if err := deps.Content.Initialize(ctx); err != nil {
		logger.Error("content repository failed to load; content API will return errors", zap.Error(err))
		return nil
	}

	counts, _ := deps.Content.Counts(ctx)
	logger.Info("content repository warmed", zap.Any("counts", counts))
	return nil
}
