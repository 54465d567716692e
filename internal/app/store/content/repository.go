package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dalemusser/stratatour/internal/app/system/geo"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"go.uber.org/zap"
)

// Source reads one collection into dst, which is a pointer to a slice or a
// struct. It returns ErrCollectionMissing when the collection is absent.
type Source interface {
	Load(ctx context.Context, collection string, dst any) error
}

// Repository is a read-only, lazily loaded index over a Source.
//
// The first read (or an explicit Initialize) loads every collection exactly
// once; concurrent first callers wait on the same load. Content is never
// refreshed afterwards, so a reseed needs a process restart.
//
// Returned records are copies of the indexed values. Nested slices and maps
// are shared with the index and must not be modified.
type Repository struct {
	src    Source
	logger *zap.Logger

	once    sync.Once
	loadErr error

	ds             Dataset
	stateBySlug    map[string]int
	stateByCode    map[string]int
	districtBySlug map[string]int
	districtByID   map[string]int
	placeByID      map[string]int
	homestayByID   map[string]int
	cultureByID    map[string]int
	festivalByID   map[string]int
	// festival id -> culture item id, derived from culture.related_festival_id
	cultureByFestival map[string]string
}

// New creates a repository over src. Nothing is read until the first call.
func New(src Source, logger *zap.Logger) *Repository {
	return &Repository{src: src, logger: logger}
}

// Initialize loads all collections on its first call and is a no-op after.
// A missing collection is loaded as empty; any other read error fails the
// load and is returned from this and every later call.
func (r *Repository) Initialize(ctx context.Context) error {
	r.once.Do(func() {
		r.loadErr = r.load(ctx)
	})
	return r.loadErr
}

// LoadDataset reads every collection of src. Missing collections are left
// empty; any other read error is returned.
func LoadDataset(ctx context.Context, src Source, logger *zap.Logger) (*Dataset, error) {
	var ds Dataset
	for _, e := range ds.Entries() {
		err := src.Load(ctx, e.Name, e.Value)
		if errors.Is(err, ErrCollectionMissing) {
			logger.Warn("content collection missing, using empty list", zap.String("collection", e.Name))
			continue
		}
		if err != nil {
			logger.Error("failed to load content collection", zap.String("collection", e.Name), zap.Error(err))
			return nil, fmt.Errorf("load %s: %w", e.Name, err)
		}
	}
	return &ds, nil
}

func (r *Repository) load(ctx context.Context) error {
	ds, err := LoadDataset(ctx, r.src, r.logger)
	if err != nil {
		return err
	}

	r.ds = *ds
	r.buildIndexes()

	r.logger.Info("content repository loaded",
		zap.Int("states", len(ds.States)),
		zap.Int("districts", len(ds.Districts)),
		zap.Int("places", len(ds.Places)),
		zap.Int("homestays", len(ds.Homestays)),
		zap.Int("festivals", len(ds.Festivals)),
		zap.Int("culture", len(ds.Culture)),
	)
	return nil
}

// firstIndex maps key(i) to i, keeping the first occurrence of each key.
func firstIndex(n int, key func(i int) string) map[string]int {
	m := make(map[string]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, dup := m[k]; !dup {
			m[k] = i
		}
	}
	return m
}

func (r *Repository) buildIndexes() {
	ds := &r.ds
	r.stateBySlug = firstIndex(len(ds.States), func(i int) string { return ds.States[i].Slug })
	r.stateByCode = firstIndex(len(ds.States), func(i int) string { return ds.States[i].Code })
	r.districtBySlug = firstIndex(len(ds.Districts), func(i int) string { return ds.Districts[i].Slug })
	r.districtByID = firstIndex(len(ds.Districts), func(i int) string { return ds.Districts[i].ID })
	r.placeByID = firstIndex(len(ds.Places), func(i int) string { return ds.Places[i].ID })
	r.homestayByID = firstIndex(len(ds.Homestays), func(i int) string { return ds.Homestays[i].ID })
	r.cultureByID = firstIndex(len(ds.Culture), func(i int) string { return ds.Culture[i].ID })
	r.festivalByID = firstIndex(len(ds.Festivals), func(i int) string { return ds.Festivals[i].ID })

	r.cultureByFestival = make(map[string]string)
	for _, c := range ds.Culture {
		if c.RelatedFestivalID == "" {
			continue
		}
		if _, dup := r.cultureByFestival[c.RelatedFestivalID]; dup {
			r.logger.Warn("festival linked from more than one culture item",
				zap.String("festival_id", c.RelatedFestivalID),
				zap.String("culture_id", c.ID))
			continue
		}
		r.cultureByFestival[c.RelatedFestivalID] = c.ID
	}
	for i := range ds.Festivals {
		ds.Festivals[i].RelatedCultureID = r.cultureByFestival[ds.Festivals[i].ID]
	}
}

// filter returns the elements of items for which keep is true, in order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// clone copies items into a new, never-nil slice.
func clone[T any](items []T) []T {
	return append(make([]T, 0, len(items)), items...)
}

// lookup returns a copy of items[idx[key]], or nil on a miss.
func lookup[T any](items []T, idx map[string]int, key string) *T {
	i, ok := idx[key]
	if !ok {
		return nil
	}
	v := items[i]
	return &v
}

// ListStates returns all states in source order.
func (r *Repository) ListStates(ctx context.Context) ([]models.State, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return clone(r.ds.States), nil
}

// GetStateBySlug returns the first state whose slug equals slug exactly,
// or nil when there is none.
func (r *Repository) GetStateBySlug(ctx context.Context, slug string) (*models.State, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.States, r.stateBySlug, slug), nil
}

// GetStateByCode returns the first state with the given code, or nil.
func (r *Repository) GetStateByCode(ctx context.Context, code string) (*models.State, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.States, r.stateByCode, code), nil
}

// ListDistricts returns all districts, or only those whose StateID equals
// stateCode when stateCode is not empty.
func (r *Repository) ListDistricts(ctx context.Context, stateCode string) ([]models.District, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	if stateCode == "" {
		return clone(r.ds.Districts), nil
	}
	return filter(r.ds.Districts, func(d models.District) bool { return d.StateID == stateCode }), nil
}

// GetDistrictBySlug returns the first district with the given slug, or nil.
func (r *Repository) GetDistrictBySlug(ctx context.Context, slug string) (*models.District, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Districts, r.districtBySlug, slug), nil
}

// GetDistrictByID returns the first district with the given id, or nil.
func (r *Repository) GetDistrictByID(ctx context.Context, id string) (*models.District, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Districts, r.districtByID, id), nil
}

// ListPlaces returns all places, or only those in districtID when it is not empty.
func (r *Repository) ListPlaces(ctx context.Context, districtID string) ([]models.Place, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	if districtID == "" {
		return clone(r.ds.Places), nil
	}
	return filter(r.ds.Places, func(p models.Place) bool { return p.DistrictID == districtID }), nil
}

// GetPlaceByID returns the first place with the given id, or nil.
func (r *Repository) GetPlaceByID(ctx context.Context, id string) (*models.Place, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Places, r.placeByID, id), nil
}

// NearbyPlaces returns the other places within radiusKm of the place with
// the given id, in source order. Places without coordinates are skipped.
// It returns nil when the place does not exist.
func (r *Repository) NearbyPlaces(ctx context.Context, id string, radiusKm float64) ([]models.Place, error) {
	origin, err := r.GetPlaceByID(ctx, id)
	if err != nil || origin == nil {
		return nil, err
	}
	if origin.Coordinates.IsZero() {
		return []models.Place{}, nil
	}
	return filter(r.ds.Places, func(p models.Place) bool {
		if p.ID == origin.ID || p.Coordinates.IsZero() {
			return false
		}
		return geo.WithinKm(origin.Coordinates, p.Coordinates, radiusKm)
	}), nil
}

// ListHomestays returns all homestays, or only those at placeID when it is not empty.
func (r *Repository) ListHomestays(ctx context.Context, placeID string) ([]models.Homestay, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	if placeID == "" {
		return clone(r.ds.Homestays), nil
	}
	return filter(r.ds.Homestays, func(h models.Homestay) bool { return h.PlaceID == placeID }), nil
}

// GetHomestayByID returns the first homestay with the given id, or nil.
func (r *Repository) GetHomestayByID(ctx context.Context, id string) (*models.Homestay, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Homestays, r.homestayByID, id), nil
}

// ListCulture returns all culture items, or only those in category when it is not empty.
func (r *Repository) ListCulture(ctx context.Context, category string) ([]models.CultureItem, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	if category == "" {
		return clone(r.ds.Culture), nil
	}
	return filter(r.ds.Culture, func(c models.CultureItem) bool { return c.Category == category }), nil
}

// GetCultureByID returns the first culture item with the given id, or nil.
func (r *Repository) GetCultureByID(ctx context.Context, id string) (*models.CultureItem, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Culture, r.cultureByID, id), nil
}

// ListFestivals returns all festivals in source order.
func (r *Repository) ListFestivals(ctx context.Context) ([]models.Festival, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return clone(r.ds.Festivals), nil
}

// GetFestivalByID returns the first festival with the given id, or nil.
func (r *Repository) GetFestivalByID(ctx context.Context, id string) (*models.Festival, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return lookup(r.ds.Festivals, r.festivalByID, id), nil
}

// CultureForFestival returns the culture item that links to the festival, or nil.
func (r *Repository) CultureForFestival(ctx context.Context, festivalID string) (*models.CultureItem, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	cultureID, ok := r.cultureByFestival[festivalID]
	if !ok {
		return nil, nil
	}
	return lookup(r.ds.Culture, r.cultureByID, cultureID), nil
}

// FestivalForCulture returns the festival a culture item links to, or nil.
func (r *Repository) FestivalForCulture(ctx context.Context, cultureID string) (*models.Festival, error) {
	c, err := r.GetCultureByID(ctx, cultureID)
	if err != nil || c == nil || c.RelatedFestivalID == "" {
		return nil, err
	}
	return lookup(r.ds.Festivals, r.festivalByID, c.RelatedFestivalID), nil
}

// ListProducts returns all products in source order.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return clone(r.ds.Products), nil
}

// ListTravelGuides returns all travel guides in source order.
func (r *Repository) ListTravelGuides(ctx context.Context) ([]models.TravelGuide, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return clone(r.ds.TravelGuides), nil
}

// Taxonomy returns the category lookup table.
func (r *Repository) Taxonomy(ctx context.Context) (models.Taxonomy, error) {
	if err := r.Initialize(ctx); err != nil {
		return models.Taxonomy{}, err
	}
	return r.ds.Taxonomy, nil
}

// FeaturedContent returns the landing page promotion lists.
func (r *Repository) FeaturedContent(ctx context.Context) (models.FeaturedContent, error) {
	if err := r.Initialize(ctx); err != nil {
		return models.FeaturedContent{}, err
	}
	return r.ds.FeaturedContent, nil
}

// CollectionsMetadata returns the per-collection counts written by the seeder.
func (r *Repository) CollectionsMetadata(ctx context.Context) (models.CollectionsMetadata, error) {
	if err := r.Initialize(ctx); err != nil {
		return models.CollectionsMetadata{}, err
	}
	return r.ds.CollectionsMetadata, nil
}

// SearchIndex returns the flat search index.
func (r *Repository) SearchIndex(ctx context.Context) (models.SearchIndex, error) {
	if err := r.Initialize(ctx); err != nil {
		return models.SearchIndex{}, err
	}
	return r.ds.SearchIndex, nil
}

// Counts returns the number of loaded records per list collection.
func (r *Repository) Counts(ctx context.Context) (map[string]int, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}
	return r.ds.Counts(), nil
}
