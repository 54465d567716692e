// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/stratatour/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STRATATOUR"

// Content sources
const (
	ContentSourceFile  = "file"
	ContentSourceMongo = "mongo"
)

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, content_dir, etc.
//   - Environment variables: STRATATOUR_MONGO_URI, STRATATOUR_CONTENT_DIR, etc.
//   - Command-line flags: --mongo_uri, --content_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "stratatour", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Content store
	{Name: "content_source", Default: ContentSourceFile, Desc: "Content store backend: 'file' or 'mongo'"},
	{Name: "content_dir", Default: "./data/content", Desc: "Directory holding the static content files"},
	{Name: "seed_on_startup", Default: true, Desc: "Seed the Mongo content collections when they are empty"},

	// CMS
	{Name: "api_key", Default: "", Desc: "Bearer API key for the CMS (leave empty to reject all CMS requests)"},
	{Name: "cms_allowed_origins", Default: "", Desc: "Comma-separated origins allowed to call the CMS (empty allows any)"},
	{Name: "audit_log", Default: auditlog.ModeAll, Desc: "CMS audit logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Request statistics
	{Name: "stats_enabled", Default: true, Desc: "Count content API and CMS requests into request_stats"},
	{Name: "stats_bucket", Default: "1h", Desc: "Request stats bucket duration (e.g., '1m', '15m', '1h', '24h')"},
	{Name: "stats_retention", Default: "2160h", Desc: "Prune request stats older than this at startup ('0' keeps all)"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded images"},
	{Name: "storage_local_url", Default: "/uploads", Desc: "URL prefix for serving local uploads"},

	// S3/CloudFront configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "uploads/", Desc: "S3 key prefix"},
	{Name: "storage_cf_url", Default: "", Desc: "CloudFront distribution URL"},
	{Name: "storage_cf_keypair_id", Default: "", Desc: "CloudFront key pair ID"},
	{Name: "storage_cf_key_path", Default: "", Desc: "Path to CloudFront private key file"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STRATATOUR_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// Content store
		ContentSource: strings.ToLower(strings.TrimSpace(appValues.String("content_source"))),
		ContentDir:    appValues.String("content_dir"),
		SeedOnStartup: appValues.Bool("seed_on_startup"),

		// CMS
		APIKey:            appValues.String("api_key"),
		CMSAllowedOrigins: splitList(appValues.String("cms_allowed_origins")),
		AuditLog:          appValues.String("audit_log"),

		// Request statistics
		StatsEnabled:   appValues.Bool("stats_enabled"),
		StatsBucket:    appValues.Duration("stats_bucket", time.Hour),
		StatsRetention: appValues.Duration("stats_retention", 90*24*time.Hour),

		// File storage
		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		// S3/CloudFront
		StorageS3Region:    appValues.String("storage_s3_region"),
		StorageS3Bucket:    appValues.String("storage_s3_bucket"),
		StorageS3Prefix:    appValues.String("storage_s3_prefix"),
		StorageCFURL:       appValues.String("storage_cf_url"),
		StorageCFKeyPairID: appValues.String("storage_cf_keypair_id"),
		StorageCFKeyPath:   appValues.String("storage_cf_key_path"),
	}

	return coreCfg, appCfg, nil
}

// splitList splits a comma-separated config value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.ContentSource {
	case ContentSourceFile:
		if appCfg.ContentDir == "" {
			return fmt.Errorf("content_dir is required when content_source is %q", ContentSourceFile)
		}
	case ContentSourceMongo:
	default:
		return fmt.Errorf("content_source must be %q or %q, got %q",
			ContentSourceFile, ContentSourceMongo, appCfg.ContentSource)
	}

	switch appCfg.StorageType {
	case "local":
	case "s3":
		if appCfg.StorageS3Bucket == "" {
			return fmt.Errorf("storage_s3_bucket is required when storage_type is s3")
		}
	default:
		return fmt.Errorf("storage_type must be 'local' or 's3', got %q", appCfg.StorageType)
	}

	if appCfg.StatsEnabled && appCfg.StatsBucket < time.Minute {
		return fmt.Errorf("stats_bucket must be at least 1m, got %s", appCfg.StatsBucket)
	}

	if appCfg.APIKey == "" {
		if coreCfg.Env == "prod" {
			return fmt.Errorf("api_key is required in production")
		}
		logger.Warn("api_key is not set; the CMS will reject every request")
	}

	return nil
}
