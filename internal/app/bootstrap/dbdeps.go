// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	contentstore "github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/system/requeststats"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown. It serves as
// the central place to store all database clients and backend connections
// that your application needs.
//
// The Shutdown hook is responsible for closing these connections gracefully
// when the application terminates.
type DBDeps struct {
	// MongoDB client and database (editor content, audit trail, and the
	// content collections when content_source is "mongo")
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Content is the read-only content repository behind the public API.
	// It loads lazily; Startup warms it.
	Content *contentstore.Repository

	// FileStorage for CMS image uploads
	FileStorage storage.Store

	// Stats counts requests per route group. Nil when stats are disabled.
	Stats *requeststats.Recorder
}
