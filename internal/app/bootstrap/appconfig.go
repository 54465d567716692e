// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings for the public content API
//   - Request body size limits
//
// AppConfig carries what is specific to the tourism site: where the
// content store lives, the MongoDB holding editor content, the CMS API
// key and the upload storage backend.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Content store configuration
	ContentSource string // "file" (static JSON files in ContentDir) or "mongo"
	ContentDir    string // Directory holding the static content files
	SeedOnStartup bool   // Seed the Mongo content collections when they are empty

	// CMS configuration
	APIKey            string   // Bearer key required on every /cms request
	CMSAllowedOrigins []string // Origins allowed to call /cms (empty allows any)
	AuditLog          string   // CMS audit destination: "all", "db", "log" or "off"

	// Request statistics
	StatsEnabled   bool          // Count requests per route group into request_stats
	StatsBucket    time.Duration // Bucket size for request counters (default: 1h)
	StatsRetention time.Duration // Buckets older than this are pruned at startup (0 keeps all)

	// Upload storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/uploads")

	// S3/CloudFront configuration (only used if StorageType is "s3")
	StorageS3Region    string // AWS region
	StorageS3Bucket    string // S3 bucket name
	StorageS3Prefix    string // Key prefix (e.g., "uploads/")
	StorageCFURL       string // CloudFront distribution URL
	StorageCFKeyPairID string // CloudFront key pair ID
	StorageCFKeyPath   string // Path to CloudFront private key file
}
