package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the content API mounted.
//
// When mounted at /api:
//   - GET /api/states, /api/states/{slug}
//   - GET /api/districts?state=, /api/districts/by-state/{code}, /api/districts/by-slug/{slug}
//   - GET /api/region
//   - GET /api/places?district=, /api/places/{id}, /api/places/{id}/nearby?radius_km=
//   - GET /api/homestays?place=, /api/homestays/{id}
//   - GET /api/culture?category=, /api/culture/{id}, /api/culture/{id}/festival
//   - GET /api/festivals, /api/festivals/{id}, /api/festivals/{id}/culture
//   - GET /api/products, /api/travel-guides, /api/taxonomy, /api/featured,
//     /api/search-index, /api/collections
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/states", h.ListStates)
	r.Get("/states/{slug}", h.GetState)

	r.Get("/districts", h.ListDistricts)
	r.Get("/districts/by-state/{code}", h.DistrictsByState)
	r.Get("/districts/by-slug/{slug}", h.DistrictBySlug)

	r.Get("/region", h.Region)

	r.Get("/places", h.ListPlaces)
	r.Get("/places/{id}", h.GetPlace)
	r.Get("/places/{id}/nearby", h.NearbyPlaces)

	r.Get("/homestays", h.ListHomestays)
	r.Get("/homestays/{id}", h.GetHomestay)

	r.Get("/culture", h.ListCulture)
	r.Get("/culture/{id}", h.GetCulture)
	r.Get("/culture/{id}/festival", h.CultureFestival)

	r.Get("/festivals", h.ListFestivals)
	r.Get("/festivals/{id}", h.GetFestival)
	r.Get("/festivals/{id}/culture", h.FestivalCulture)

	r.Get("/products", respond(h, h.repo.ListProducts))
	r.Get("/travel-guides", respond(h, h.repo.ListTravelGuides))
	r.Get("/taxonomy", respond(h, h.repo.Taxonomy))
	r.Get("/featured", respond(h, h.repo.FeaturedContent))
	r.Get("/search-index", respond(h, h.repo.SearchIndex))
	r.Get("/collections", respond(h, h.repo.CollectionsMetadata))

	return r
}

// MountRootEndpoints adds the unprefixed state and district paths the CMS
// front end calls directly on the root router.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/states", h.ListStates)
	r.Get("/states/{slug}", h.GetState)
	r.Get("/districts/by-state/{code}", h.DistrictsByState)
	r.Get("/districts/by-slug/{slug}", h.DistrictBySlug)
}
