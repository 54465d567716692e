// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/stratatour/internal/app/store/audit"
	"github.com/dalemusser/stratatour/internal/app/system/auth"
	"github.com/dalemusser/stratatour/internal/app/system/network"
	"go.uber.org/zap"
)

// Destinations for audit events.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off" // disabled
)

// Logger records CMS edits to MongoDB (via audit.Store) and to structured
// logs (via zap), as selected by its mode.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	mode   string
}

// New creates a new audit Logger. An unknown mode logs everywhere.
func New(store *audit.Store, zapLog *zap.Logger, mode string) *Logger {
	switch mode {
	case ModeAll, ModeDB, ModeLog, ModeOff:
	default:
		mode = ModeAll
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		mode:   mode,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
		zap.String("editor", event.Editor),
	}
	if event.Scope != "" {
		fields = append(fields, zap.String("scope", event.Scope), zap.String("slug", event.Slug))
	}
	if event.Section != "" {
		fields = append(fields, zap.String("section", event.Section))
	}
	if event.TargetID != "" {
		fields = append(fields, zap.String("target_id", event.TargetID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event. A nil Logger is a no-op so handlers can run
// without auditing in tests.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil || l.mode == ModeOff {
		return
	}

	if l.mode == ModeAll || l.mode == ModeLog {
		l.logToZap(event)
	}

	if (l.mode == ModeAll || l.mode == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func fromRequest(r *http.Request, eventType string) audit.Event {
	return audit.Event{
		EventType: eventType,
		Editor:    auth.Editor(r),
		IP:        network.GetClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// SectionSaved logs a successful section replacement.
func (l *Logger) SectionSaved(ctx context.Context, r *http.Request, scope, slug, section string) {
	e := fromRequest(r, audit.EventSectionSaved)
	e.Scope, e.Slug, e.Section = scope, slug, section
	e.Success = true
	l.Log(ctx, e)
}

// SectionRejected logs a section save that failed validation or lookup.
func (l *Logger) SectionRejected(ctx context.Context, r *http.Request, scope, slug, section, reason string) {
	e := fromRequest(r, audit.EventSectionRejected)
	e.Scope, e.Slug, e.Section = scope, slug, section
	e.FailureReason = reason
	l.Log(ctx, e)
}

// CulturalItemDeleted logs the removal of a cultural item.
func (l *Logger) CulturalItemDeleted(ctx context.Context, r *http.Request, id string) {
	e := fromRequest(r, audit.EventCulturalItemDelete)
	e.TargetID = id
	e.Success = true
	l.Log(ctx, e)
}

// ImageUploaded logs a stored upload.
func (l *Logger) ImageUploaded(ctx context.Context, r *http.Request, key, contentType string, size int64) {
	e := fromRequest(r, audit.EventImageUploaded)
	e.TargetID = key
	e.Success = true
	e.Details = map[string]string{
		"content_type": contentType,
		"size":         strconv.FormatInt(size, 10),
	}
	l.Log(ctx, e)
}
