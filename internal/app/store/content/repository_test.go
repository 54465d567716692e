package content

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// spySource serves collections from an in-memory Dataset and counts reads.
type spySource struct {
	ds      *Dataset
	missing map[string]bool
	fail    map[string]error
	reads   atomic.Int64
}

func (s *spySource) Load(_ context.Context, collection string, dst any) error {
	s.reads.Add(1)
	if s.missing[collection] {
		return ErrCollectionMissing
	}
	if err := s.fail[collection]; err != nil {
		return err
	}
	for _, e := range s.ds.Entries() {
		if e.Name == collection {
			reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(e.Value).Elem())
			return nil
		}
	}
	return ErrCollectionMissing
}

func strPtr(s string) *string { return &s }

func fixture() *Dataset {
	return &Dataset{
		States: []models.State{
			{Code: "MN", Slug: "manipur", Name: "Manipur", Capital: "Imphal"},
			{Code: "AS", Slug: "assam", Name: "Assam", Capital: "Dispur"},
			{Code: "XX", Slug: "manipur", Name: "Duplicate", Capital: "Nowhere"},
		},
		Districts: []models.District{
			{ID: "MN_BIS", StateID: "MN", Name: "Bishnupur", Slug: "bishnupur"},
			{ID: "AS_KAM", StateID: "AS", Name: "Kamrup", Slug: "kamrup"},
			{ID: "AS_KAR_ANG", StateID: "AS", Name: "Karbi Anglong", Slug: "karbi-anglong"},
			{ID: "AS_MAJ", StateID: "AS", Name: "Majuli", Slug: "majuli"},
		},
		Places: []models.Place{
			{ID: "p1", DistrictID: "MN_BIS_01", Name: "Loktak Lake", Coordinates: models.Coordinates{Lat: 24.55, Lng: 93.80}},
			{ID: "p2", DistrictID: "AS_MAJ", Name: "Auniati Satra", Coordinates: models.Coordinates{Lat: 26.95, Lng: 94.17}},
			{ID: "p3", DistrictID: "MN_BIS_01", Name: "Keibul Lamjao", Coordinates: models.Coordinates{Lat: 24.50, Lng: 93.82}},
			{ID: "p4", Name: "Unassigned"},
		},
		Homestays: []models.Homestay{
			{ID: "h1", PlaceID: "p1", Name: "Lakeside"},
			{ID: "h2", PlaceID: "p2", Name: "Mising House"},
		},
		Culture: []models.CultureItem{
			{ID: "c1", StateID: strPtr("MN"), Category: models.CultureFestivals, Title: "Yaoshang", RelatedFestivalID: "f1"},
			{ID: "c2", Category: models.CultureMusic, Title: "Bihu songs"},
			{ID: "c3", StateID: strPtr("AS"), Category: models.CultureFestivals, Title: "Raas", RelatedFestivalID: "f-missing"},
		},
		Festivals: []models.Festival{
			{ID: "f1", StateID: "MN", Name: "Yaoshang"},
			{ID: "f2", StateID: "AS", Name: "Ali Aye Ligang"},
		},
		FeaturedContent: models.FeaturedContent{TrendingPlaceIDs: []string{"p1"}},
	}
}

func newRepo(t *testing.T) (*Repository, *spySource) {
	t.Helper()
	src := &spySource{ds: fixture()}
	return New(src, zap.NewNop()), src
}

func TestLoadsOnceAcrossReads(t *testing.T) {
	repo, src := newRepo(t)
	ctx := context.Background()

	assert.Zero(t, src.reads.Load(), "nothing read before first call")

	_, err := repo.ListStates(ctx)
	require.NoError(t, err)
	afterFirst := src.reads.Load()
	assert.Equal(t, int64(len((&Dataset{}).Entries())), afterFirst)

	_, err = repo.ListDistricts(ctx, "")
	require.NoError(t, err)
	require.NoError(t, repo.Initialize(ctx))
	assert.Equal(t, afterFirst, src.reads.Load())
}

func TestConcurrentFirstCallsLoadOnce(t *testing.T) {
	repo, src := newRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, err := repo.GetStateBySlug(ctx, "manipur")
			assert.NoError(t, err)
			assert.NotNil(t, st)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(len((&Dataset{}).Entries())), src.reads.Load())
}

func TestGetStateBySlug(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	st, err := repo.GetStateBySlug(ctx, "manipur")
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "Imphal", st.Capital, "first match wins on duplicate slugs")

	st, err = repo.GetStateBySlug(ctx, "Manipur")
	require.NoError(t, err)
	assert.Nil(t, st, "lookup is case-sensitive")
}

func TestLookupMissReturnsNil(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	st, err := repo.GetStateByCode(ctx, "ZZ")
	assert.NoError(t, err)
	assert.Nil(t, st)

	d, err := repo.GetDistrictBySlug(ctx, "nowhere")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = repo.GetDistrictByID(ctx, "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, d)

	p, err := repo.GetPlaceByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, p)

	h, err := repo.GetHomestayByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, h)

	c, err := repo.GetCultureByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, c)

	f, err := repo.GetFestivalByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, f)

	near, err := repo.NearbyPlaces(ctx, "nope", 10)
	assert.NoError(t, err)
	assert.Nil(t, near)
}

func TestListDistrictsFilter(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	all, err := repo.ListDistricts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	assam, err := repo.ListDistricts(ctx, "AS")
	require.NoError(t, err)
	ids := make([]string, 0, len(assam))
	for _, d := range assam {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"AS_KAM", "AS_KAR_ANG", "AS_MAJ"}, ids)

	lower, err := repo.ListDistricts(ctx, "as")
	require.NoError(t, err)
	assert.Empty(t, lower)
}

func TestListPlacesFilterPreservesOrder(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	bis, err := repo.ListPlaces(ctx, "MN_BIS_01")
	require.NoError(t, err)
	require.Len(t, bis, 2)
	assert.Equal(t, "p1", bis[0].ID)
	assert.Equal(t, "p3", bis[1].ID)

	all, err := repo.ListPlaces(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, want := range []string{"p1", "p2", "p3", "p4"} {
		assert.Equal(t, want, all[i].ID)
	}
}

func TestListHomestaysAndCulture(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	hs, err := repo.ListHomestays(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "h2", hs[0].ID)

	fest, err := repo.ListCulture(ctx, models.CultureFestivals)
	require.NoError(t, err)
	assert.Len(t, fest, 2)

	all, err := repo.ListCulture(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	st, err := repo.GetStateBySlug(ctx, "assam")
	require.NoError(t, err)
	st.Capital = "changed"

	states, err := repo.ListStates(ctx)
	require.NoError(t, err)
	states[0].Name = "changed"

	again, err := repo.GetStateBySlug(ctx, "assam")
	require.NoError(t, err)
	assert.Equal(t, "Dispur", again.Capital)

	states, err = repo.ListStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Manipur", states[0].Name)
}

func TestFestivalCultureJoin(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	f, err := repo.GetFestivalByID(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "c1", f.RelatedCultureID)

	f, err = repo.GetFestivalByID(ctx, "f2")
	require.NoError(t, err)
	assert.Empty(t, f.RelatedCultureID)

	c, err := repo.CultureForFestival(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c1", c.ID)

	fest, err := repo.FestivalForCulture(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, fest)
	assert.Equal(t, "f1", fest.ID)

	// Dangling link resolves to nothing.
	fest, err = repo.FestivalForCulture(ctx, "c3")
	require.NoError(t, err)
	assert.Nil(t, fest)

	fest, err = repo.FestivalForCulture(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, fest)
}

func TestNearbyPlaces(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	near, err := repo.NearbyPlaces(ctx, "p1", 20)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "p3", near[0].ID)

	near, err = repo.NearbyPlaces(ctx, "p4", 500)
	require.NoError(t, err)
	assert.Empty(t, near, "place without coordinates has no neighbours")
}

func TestMissingCollectionIsEmpty(t *testing.T) {
	src := &spySource{ds: fixture(), missing: map[string]bool{CollHomestays: true}}
	repo := New(src, zap.NewNop())
	ctx := context.Background()

	hs, err := repo.ListHomestays(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, hs)

	states, err := repo.ListStates(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 3)
}

func TestLoadErrorIsSticky(t *testing.T) {
	boom := errors.New("malformed")
	src := &spySource{ds: fixture(), fail: map[string]error{CollPlaces: boom}}
	repo := New(src, zap.NewNop())
	ctx := context.Background()

	_, err := repo.ListStates(ctx)
	require.ErrorIs(t, err, boom)
	reads := src.reads.Load()

	_, err = repo.GetPlaceByID(ctx, "p1")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, reads, src.reads.Load(), "failed load is not retried")
}

func TestCounts(t *testing.T) {
	repo, _ := newRepo(t)

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts[CollStates])
	assert.Equal(t, 4, counts[CollPlaces])
	assert.Equal(t, 0, counts[CollProducts])
}
