// Package content serves the read-only content API over the content
// repository. State and district pages are merged with the editor
// content saved through the CMS.
package content

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	contentstore "github.com/dalemusser/stratatour/internal/app/store/content"
	cmscontentstore "github.com/dalemusser/stratatour/internal/app/store/cmscontent"
	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/normalize"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultNearbyRadiusKm is used when a nearby request names no radius.
const DefaultNearbyRadiusKm = 25.0

// Overlay supplies editor content for an entity.
// Get returns mongo.ErrNoDocuments when nothing has been saved.
type Overlay interface {
	Get(ctx context.Context, scope, slug string) (models.EntityContent, error)
}

// Handler serves content API requests.
type Handler struct {
	repo    *contentstore.Repository
	overlay Overlay
	logger  *zap.Logger
}

// NewHandler creates a content Handler. overlay may be nil, in which case
// pages are served exactly as seeded.
func NewHandler(repo *contentstore.Repository, overlay Overlay, logger *zap.Logger) *Handler {
	return &Handler{
		repo:    repo,
		overlay: overlay,
		logger:  logger,
	}
}

// fail writes the response for a repository error. The repository only
// fails when the content store could not be loaded.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("content unavailable",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	jsonutil.InternalError(w, "content unavailable")
}

// editorContent returns the saved editor content of an entity, if any.
// Overlay failures are logged and the seeded page is served.
func (h *Handler) editorContent(ctx context.Context, scope, slug string) (models.EntityContent, bool) {
	if h.overlay == nil {
		return models.EntityContent{}, false
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), h.logger, "load editor content")
	defer cancel()

	ec, err := h.overlay.Get(ctx, scope, slug)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.logger.Warn("editor content unavailable, serving seeded page",
				zap.String("scope", scope),
				zap.String("slug", slug),
				zap.Error(err))
		}
		return models.EntityContent{}, false
	}
	return ec, true
}

/* -------------------------------------------------------------------------- */
/* States and districts                                                       */
/* -------------------------------------------------------------------------- */

// ListStates handles GET /states.
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.repo.ListStates(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, states)
}

// GetState handles GET /states/{slug}, merged with its editor content.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	st, err := h.repo.GetStateBySlug(r.Context(), slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if st == nil {
		jsonutil.NotFound(w, "state not found")
		return
	}
	if ec, ok := h.editorContent(r.Context(), models.ScopeStates, slug); ok {
		cmscontentstore.ApplyToState(st, ec)
	}
	jsonutil.OK(w, st)
}

// ListDistricts handles GET /districts?state=CODE.
func (h *Handler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	h.writeDistricts(w, r, normalize.QueryParam(r.URL.Query().Get("state")))
}

// DistrictsByState handles GET /districts/by-state/{code}.
func (h *Handler) DistrictsByState(w http.ResponseWriter, r *http.Request) {
	h.writeDistricts(w, r, chi.URLParam(r, "code"))
}

func (h *Handler) writeDistricts(w http.ResponseWriter, r *http.Request, stateCode string) {
	districts, err := h.repo.ListDistricts(r.Context(), stateCode)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, districts)
}

// DistrictBySlug handles GET /districts/by-slug/{slug}, merged with its
// editor content.
func (h *Handler) DistrictBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	d, err := h.repo.GetDistrictBySlug(r.Context(), slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if d == nil {
		jsonutil.NotFound(w, "district not found")
		return
	}
	if ec, ok := h.editorContent(r.Context(), models.ScopeDistricts, slug); ok {
		cmscontentstore.ApplyToDistrict(d, ec)
	}
	jsonutil.OK(w, d)
}

// Region handles GET /region: the region-wide editor content.
func (h *Handler) Region(w http.ResponseWriter, r *http.Request) {
	ec, ok := h.editorContent(r.Context(), models.ScopeRegion, models.RegionSlug)
	if !ok {
		ec = models.EntityContent{Scope: models.ScopeRegion, Slug: models.RegionSlug}
	}
	jsonutil.OK(w, ec)
}

/* -------------------------------------------------------------------------- */
/* Places and homestays                                                       */
/* -------------------------------------------------------------------------- */

// ListPlaces handles GET /places?district=ID.
func (h *Handler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.repo.ListPlaces(r.Context(), normalize.QueryParam(r.URL.Query().Get("district")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, places)
}

// GetPlace handles GET /places/{id}.
func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetPlaceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if p == nil {
		jsonutil.NotFound(w, "place not found")
		return
	}
	jsonutil.OK(w, p)
}

// NearbyPlaces handles GET /places/{id}/nearby?radius_km=N.
func (h *Handler) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	radius := DefaultNearbyRadiusKm
	if raw := normalize.QueryParam(r.URL.Query().Get("radius_km")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			jsonutil.BadRequest(w, "radius_km must be a positive number")
			return
		}
		radius = v
	}

	id := chi.URLParam(r, "id")
	nearby, err := h.repo.NearbyPlaces(r.Context(), id, radius)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if nearby == nil {
		jsonutil.NotFound(w, "place not found")
		return
	}
	jsonutil.OK(w, nearby)
}

// ListHomestays handles GET /homestays?place=ID.
func (h *Handler) ListHomestays(w http.ResponseWriter, r *http.Request) {
	stays, err := h.repo.ListHomestays(r.Context(), normalize.QueryParam(r.URL.Query().Get("place")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, stays)
}

// GetHomestay handles GET /homestays/{id}.
func (h *Handler) GetHomestay(w http.ResponseWriter, r *http.Request) {
	hs, err := h.repo.GetHomestayByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if hs == nil {
		jsonutil.NotFound(w, "homestay not found")
		return
	}
	jsonutil.OK(w, hs)
}

/* -------------------------------------------------------------------------- */
/* Culture and festivals                                                      */
/* -------------------------------------------------------------------------- */

// ListCulture handles GET /culture?category=NAME.
func (h *Handler) ListCulture(w http.ResponseWriter, r *http.Request) {
	category := normalize.Category(r.URL.Query().Get("category"))
	if category != "" && !models.IsValidCultureCategory(category) {
		jsonutil.BadRequest(w, "unknown culture category")
		return
	}
	items, err := h.repo.ListCulture(r.Context(), category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, items)
}

// GetCulture handles GET /culture/{id}.
func (h *Handler) GetCulture(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.GetCultureByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if item == nil {
		jsonutil.NotFound(w, "culture item not found")
		return
	}
	jsonutil.OK(w, item)
}

// CultureFestival handles GET /culture/{id}/festival.
func (h *Handler) CultureFestival(w http.ResponseWriter, r *http.Request) {
	f, err := h.repo.FestivalForCulture(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if f == nil {
		jsonutil.NotFound(w, "no festival linked to this culture item")
		return
	}
	jsonutil.OK(w, f)
}

// ListFestivals handles GET /festivals.
func (h *Handler) ListFestivals(w http.ResponseWriter, r *http.Request) {
	fests, err := h.repo.ListFestivals(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonutil.OK(w, fests)
}

// GetFestival handles GET /festivals/{id}.
func (h *Handler) GetFestival(w http.ResponseWriter, r *http.Request) {
	f, err := h.repo.GetFestivalByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if f == nil {
		jsonutil.NotFound(w, "festival not found")
		return
	}
	jsonutil.OK(w, f)
}

// FestivalCulture handles GET /festivals/{id}/culture.
func (h *Handler) FestivalCulture(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.CultureForFestival(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if item == nil {
		jsonutil.NotFound(w, "no culture item linked to this festival")
		return
	}
	jsonutil.OK(w, item)
}

/* -------------------------------------------------------------------------- */
/* Lookup tables                                                              */
/* -------------------------------------------------------------------------- */

// respond adapts a repository getter into a handler.
func respond[T any](h *Handler, get func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := get(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		jsonutil.OK(w, v)
	}
}
