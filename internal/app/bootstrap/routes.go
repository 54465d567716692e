// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	cmsfeature "github.com/dalemusser/stratatour/internal/app/features/cms"
	contentfeature "github.com/dalemusser/stratatour/internal/app/features/content"
	errorsfeature "github.com/dalemusser/stratatour/internal/app/features/errors"
	healthfeature "github.com/dalemusser/stratatour/internal/app/features/health"
	"github.com/dalemusser/stratatour/internal/app/store/audit"
	cmscontentstore "github.com/dalemusser/stratatour/internal/app/store/cmscontent"
	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/auditlog"
	"github.com/dalemusser/stratatour/internal/app/system/requeststats"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// # Route Groups
//
//   - /api/*: the public, read-only content API (waffle CORS from core config)
//   - /states, /districts/by-*: the same state and district reads, unprefixed
//   - /cms/*: the editor API (bearer API key + apicors, no cookies, no CSRF)
//
// The content API and the CMS are counted into request_stats by route group.
//   - /health, /ready, /readyz, /livez: probes
//   - <storage_local_url>/*: uploaded images when storage is local
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create error logger and fallback handlers.
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	// Create audit store and logger for CMS edit tracking.
	auditLogger := auditlog.New(audit.New(deps.MongoDatabase), logger, appCfg.AuditLog)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Panics become logged JSON 500s.
	r.Use(errLog.Recoverer)

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// ─────────────────────────────────────────────────────────────────────────────
	// Public content API
	// Editor content is overlaid on state and district pages.
	// ─────────────────────────────────────────────────────────────────────────────
	contentHandler := contentfeature.NewHandler(deps.Content, cmscontentstore.New(deps.MongoDatabase), logger)
	r.Group(func(pub chi.Router) {
		pub.Use(requeststats.Middleware(deps.Stats, statsstore.SurfaceContent))
		pub.Mount("/api", contentfeature.Routes(contentHandler))
		contentfeature.MountRootEndpoints(pub, contentHandler)
	})

	// ─────────────────────────────────────────────────────────────────────────────
	// CMS
	// Bearer API key auth; bearer headers are not CSRF-vulnerable.
	// ─────────────────────────────────────────────────────────────────────────────
	cmsHandler := cmsfeature.NewHandler(deps.MongoDatabase, deps.Content, auditLogger, deps.FileStorage, logger)
	r.Mount("/cms", cmsfeature.Routes(cmsHandler, appCfg.APIKey, appCfg.CMSAllowedOrigins, deps.Stats, logger))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Content, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Uploaded images (local storage only)
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	return r, nil
}
