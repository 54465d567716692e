// cmd/seed/main.go
//
// seed rebuilds the whole static content store from the primary district
// source plus the built-in content, and optionally publishes it to MongoDB.
// It takes no flags; see internal/app/system/toolconfig for the environment.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dalemusser/stratatour/internal/app/system/batch"
	"github.com/dalemusser/stratatour/internal/app/system/seeding"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := batch.Main(ctx, "seed", seeding.Run, os.Stderr)
	stop()
	os.Exit(code)
}
