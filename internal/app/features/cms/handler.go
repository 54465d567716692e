// Package cms implements the editor API: whole-section replacement of the
// editor-owned content of the region, states and districts, image uploads,
// cultural item management and the audit trail.
package cms

import (
	"context"
	"io"
	"net/http"

	"github.com/dalemusser/stratatour/internal/app/store/audit"
	cmscontentstore "github.com/dalemusser/stratatour/internal/app/store/cmscontent"
	contentstore "github.com/dalemusser/stratatour/internal/app/store/content"
	culturalitemsstore "github.com/dalemusser/stratatour/internal/app/store/culturalitems"
	"github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/auditlog"
	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ImageStore is the part of storage.Store the upload endpoint needs.
type ImageStore interface {
	Put(ctx context.Context, path string, r io.Reader, opts *storage.PutOptions) error
	URL(path string) string
}

// Handler serves CMS requests.
type Handler struct {
	repo     *contentstore.Repository
	sections *cmscontentstore.Store
	culture  *culturalitemsstore.Store
	events   *audit.Store
	stats    *requeststats.Store
	auditLog *auditlog.Logger
	images   ImageStore
	logger   *zap.Logger
}

// NewHandler creates a CMS Handler. images may be nil, in which case
// uploads answer 503.
func NewHandler(
	db *mongo.Database,
	repo *contentstore.Repository,
	auditLog *auditlog.Logger,
	images ImageStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		repo:     repo,
		sections: cmscontentstore.New(db),
		culture:  culturalitemsstore.New(db),
		events:   audit.New(db),
		stats:    requeststats.New(db),
		auditLog: auditLog,
		images:   images,
		logger:   logger,
	}
}

// internal logs err and answers 500 without leaking it.
func (h *Handler) internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	jsonutil.InternalError(w, msg)
}
