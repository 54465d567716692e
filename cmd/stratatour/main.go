// cmd/stratatour/main.go
//
// stratatour serves the public content API, the CMS and the health probes.
// Configuration comes from STRATATOUR_* environment variables, config files
// or flags (see internal/app/bootstrap/config.go).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dalemusser/stratatour/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, bootstrap.Hooks); err != nil {
		logger, _ := zap.NewProduction()
		logger.Error("stratatour exited", zap.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
}
