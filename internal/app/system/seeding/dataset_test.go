package seeding

import (
	"testing"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetDoesNotPersistDerivedFestivalLink(t *testing.T) {
	for _, f := range Dataset(nil).Festivals {
		assert.Empty(t, f.RelatedCultureID, f.ID)
	}
}

func TestDatasetHasManipurAndAssam(t *testing.T) {
	ds := Dataset(nil)
	require.Len(t, ds.States, 2)
	assert.Equal(t, "manipur", ds.States[0].Slug)
	assert.Equal(t, "Imphal", ds.States[0].Capital)
	assert.Equal(t, "assam", ds.States[1].Slug)
	assert.NotNil(t, ds.Districts)
}

func TestBuildFeaturedContent(t *testing.T) {
	ds := &content.Dataset{
		Places: []models.Place{
			{ID: "a", Tier: 1},
			{ID: "b", Tier: 2, HiddenGem: true},
			{ID: "c", Tier: 1, HiddenGem: true},
		},
		Festivals: []models.Festival{
			{ID: "late", StartDate: "2026-11-01"},
			{ID: "early", StartDate: "2026-02-01"},
			{ID: "also-early", StartDate: "2026-02-01"},
		},
	}

	fc := BuildFeaturedContent(ds)
	assert.Equal(t, []string{"a", "c"}, fc.TrendingPlaceIDs)
	assert.Equal(t, []string{"b", "c"}, fc.HiddenGemIDs)
	assert.Equal(t, []string{"early", "also-early", "late"}, fc.FestivalIDs)
	assert.Equal(t, "late", ds.Festivals[0].ID, "input order untouched")
}

func TestBuildSearchIndex(t *testing.T) {
	ds := &content.Dataset{
		States: []models.State{{Code: "MN", Slug: "manipur", Name: "Manipur", Capital: "Imphal"}},
		Districts: []models.District{
			{ID: "AS_MAJ", Name: "Majuli", Slug: "majuli", KnownFor: []string{"Satras", "Mask making"}},
		},
		Places: []models.Place{{ID: "p1", Name: "Loktak Lake", Category: "lake", Tags: []string{"Lakes", "lake"}}},
	}

	idx := BuildSearchIndex(ds)
	require.Len(t, idx.Entries, 3)

	assert.Equal(t, models.SearchEntry{
		Kind: "state", ID: "MN", Title: "Manipur", Path: "/states/manipur",
		Terms: []string{"manipur", "imphal"},
	}, idx.Entries[0])
	assert.Equal(t, "/districts/majuli", idx.Entries[1].Path)
	assert.Equal(t, []string{"majuli", "satras", "mask making"}, idx.Entries[1].Terms)
	assert.Equal(t, []string{"loktak", "lake", "lakes"}, idx.Entries[2].Terms)
}

func TestBuildCollectionsMetadata(t *testing.T) {
	ds := Dataset(nil)
	md := ds.CollectionsMetadata

	require.Len(t, md.Collections, len(ds.Entries()))
	byName := map[string]models.CollectionInfo{}
	for _, c := range md.Collections {
		byName[c.Name] = c
	}
	assert.Equal(t, len(ds.Places), byName[content.CollPlaces].Count)
	assert.Equal(t, "places_normalized.json", byName[content.CollPlaces].File)
	assert.Equal(t, 1, byName[content.CollTaxonomy].Count)
	assert.Equal(t, 0, byName[content.CollDistricts].Count)
}
