// cmd/districtupdate/main.go
//
// districtupdate re-reconciles the district list and rewrites only the
// district collection and the tables derived from it.
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
	code := batch.Main(ctx, "districtupdate", seeding.UpdateDistricts, os.Stderr)
	stop()
	os.Exit(code)
}
