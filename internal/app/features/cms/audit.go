package cms

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/stratatour/internal/app/store/audit"
	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/normalize"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
)

// AuditPage is one page of the audit trail.
type AuditPage struct {
	Events []audit.Event `json:"events"`
	Total  int64         `json:"total"`
	Page   int64         `json:"page"`
}

// ListAudit handles GET /audit. Filters: scope, slug, event_type, editor,
// since and until (RFC 3339), limit and page.
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := audit.QueryFilter{
		Scope:     normalize.Scope(q.Get("scope")),
		Slug:      normalize.QueryParam(q.Get("slug")),
		EventType: normalize.QueryParam(q.Get("event_type")),
		Editor:    normalize.Editor(q.Get("editor")),
	}

	for name, dst := range map[string]**time.Time{"since": &filter.StartTime, "until": &filter.EndTime} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			jsonutil.BadRequest(w, name+" must be an RFC 3339 time")
			return
		}
		*dst = &t
	}
	for name, dst := range map[string]*int64{"limit": &filter.Limit, "page": &filter.Page} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			jsonutil.BadRequest(w, name+" must be a positive integer")
			return
		}
		*dst = n
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "query audit trail")
	defer cancel()

	events, err := h.events.Query(ctx, filter)
	if err != nil {
		h.internal(w, r, "failed to query audit trail", err)
		return
	}
	total, err := h.events.Count(ctx, filter)
	if err != nil {
		h.internal(w, r, "failed to count audit events", err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	jsonutil.OK(w, AuditPage{Events: events, Total: total, Page: page})
}
