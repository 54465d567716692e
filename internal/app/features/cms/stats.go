package cms

import (
	"net/http"
	"time"

	"github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/normalize"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
)

// defaultStatsWindow is how far back GET /stats looks when since is absent.
const defaultStatsWindow = 24 * time.Hour

// StatsReport is the response of GET /stats.
type StatsReport struct {
	Since     time.Time              `json:"since"`
	Until     time.Time              `json:"until"`
	Summaries []requeststats.Summary `json:"summaries"`
	Buckets   []requeststats.Bucket  `json:"buckets"`
}

var knownSurfaces = map[requeststats.Surface]bool{
	requeststats.SurfaceContent:   true,
	requeststats.SurfaceCMSRead:   true,
	requeststats.SurfaceCMSWrite:  true,
	requeststats.SurfaceCMSUpload: true,
}

// RequestStats handles GET /stats?since=&until=&surface=. Times are RFC 3339;
// the window defaults to the last 24 hours.
func (h *Handler) RequestStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	until := time.Now().UTC()
	if raw := q.Get("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			jsonutil.BadRequest(w, "until must be an RFC 3339 time")
			return
		}
		until = t
	}
	since := until.Add(-defaultStatsWindow)
	if raw := q.Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			jsonutil.BadRequest(w, "since must be an RFC 3339 time")
			return
		}
		since = t
	}
	if since.After(until) {
		jsonutil.BadRequest(w, "since must not be after until")
		return
	}

	surface := requeststats.Surface(normalize.QueryParam(q.Get("surface")))
	if surface != "" && !knownSurfaces[surface] {
		jsonutil.BadRequest(w, "unknown surface")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "query request stats")
	defer cancel()

	summaries, err := h.stats.Summarize(ctx, since, until)
	if err != nil {
		h.internal(w, r, "failed to summarize request stats", err)
		return
	}
	if surface != "" {
		filtered := []requeststats.Summary{}
		for _, s := range summaries {
			if s.Surface == surface {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}
	buckets, err := h.stats.Range(ctx, surface, since, until)
	if err != nil {
		h.internal(w, r, "failed to list request stats", err)
		return
	}

	jsonutil.OK(w, StatsReport{Since: since, Until: until, Summaries: summaries, Buckets: buckets})
}
