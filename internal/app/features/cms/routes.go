package cms

import (
	"net/http"

	statsstore "github.com/dalemusser/stratatour/internal/app/store/requeststats"
	"github.com/dalemusser/stratatour/internal/app/system/apicors"
	"github.com/dalemusser/stratatour/internal/app/system/auth"
	"github.com/dalemusser/stratatour/internal/app/system/requeststats"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns the CMS router. Every route requires the bearer API key;
// CORS preflight is answered before authentication. Authenticated requests
// are counted by recorder, which may be nil.
//
// When mounted at /cms:
//   - GET    /cms/audit?scope=&slug=&event_type=&editor=&limit=&page=
//   - GET    /cms/stats?since=&until=&surface=
//   - POST   /cms/upload
//   - GET    /cms/cultural-items?category=
//   - GET    /cms/cultural-items/{id}
//   - DELETE /cms/cultural-items/{id}
//   - GET    /cms/{scope}/{slug}
//   - PUT    /cms/{scope}/{slug}/{section}
func Routes(h *Handler, apiKey string, origins []string, recorder *requeststats.Recorder, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(apicors.New(origins))
	r.Use(auth.APIKeyAuth(apiKey, logger))

	r.Group(func(gr chi.Router) {
		gr.Use(requeststats.Middleware(recorder, statsstore.SurfaceCMSRead))
		gr.Get("/audit", h.ListAudit)
		gr.Get("/stats", h.RequestStats)
		gr.Get("/cultural-items", h.ListCulturalItems)
		gr.Get("/cultural-items/{id}", h.GetCulturalItem)
		gr.Get("/{scope}/{slug}", h.GetContent)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(requeststats.Middleware(recorder, statsstore.SurfaceCMSWrite))
		gr.Delete("/cultural-items/{id}", h.DeleteCulturalItem)
		gr.Put("/{scope}/{slug}/{section}", h.SaveSection)
	})

	r.With(requeststats.Middleware(recorder, statsstore.SurfaceCMSUpload)).Post("/upload", h.Upload)

	return r
}
