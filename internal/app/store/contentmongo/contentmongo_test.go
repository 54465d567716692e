package contentmongo

import (
	"testing"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/dalemusser/stratatour/internal/testutil"
	"go.uber.org/zap"
)

func dataset() *content.Dataset {
	return &content.Dataset{
		States: []models.State{
			{Code: "MN", Slug: "manipur", Name: "Manipur", Capital: "Imphal"},
			{Code: "AS", Slug: "assam", Name: "Assam", Capital: "Dispur"},
		},
		Places: []models.Place{
			{ID: "z-last-by-id", DistrictID: "MN_BIS_01", Name: "Loktak Lake", Tier: 1},
			{ID: "a-first-by-id", DistrictID: "MN_BIS_01", Name: "Keibul Lamjao", Tier: 1},
		},
		Culture: []models.CultureItem{
			{ID: "c1", Category: models.CultureFestivals, Title: "Yaoshang", RelatedFestivalID: "f1"},
		},
		Festivals: []models.Festival{
			{ID: "f1", StateID: "MN", Name: "Yaoshang", RelatedCultureID: "ignored"},
		},
		Taxonomy: models.Taxonomy{Tags: []string{"lakes", "wildlife"}},
	}
}

func TestPublishThenLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pub := NewPublisher(db, zap.NewNop())
	if err := pub.Publish(ctx, dataset()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	src := NewSource(db)

	var places []models.Place
	if err := src.Load(ctx, content.CollPlaces, &places); err != nil {
		t.Fatalf("Load(places) error = %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("len(places) = %d, want 2", len(places))
	}
	if places[0].ID != "z-last-by-id" || places[1].ID != "a-first-by-id" {
		t.Errorf("places order = [%s %s], want source order", places[0].ID, places[1].ID)
	}

	var tax models.Taxonomy
	if err := src.Load(ctx, content.CollTaxonomy, &tax); err != nil {
		t.Fatalf("Load(taxonomy) error = %v", err)
	}
	if len(tax.Tags) != 2 {
		t.Errorf("len(taxonomy.Tags) = %d, want 2", len(tax.Tags))
	}

	var festivals []models.Festival
	if err := src.Load(ctx, content.CollFestivals, &festivals); err != nil {
		t.Fatalf("Load(festivals) error = %v", err)
	}
	if festivals[0].RelatedCultureID != "" {
		t.Errorf("RelatedCultureID = %q, want it not persisted", festivals[0].RelatedCultureID)
	}
}

func TestPublishReplacesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pub := NewPublisher(db, zap.NewNop())
	if err := pub.Publish(ctx, dataset()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	smaller := dataset()
	smaller.States = smaller.States[:1]
	if err := pub.Publish(ctx, smaller); err != nil {
		t.Fatalf("second Publish() error = %v", err)
	}

	n, err := db.Collection(content.CollStates).CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("CountDocuments() error = %v", err)
	}
	if n != 1 {
		t.Errorf("states count = %d, want 1", n)
	}
}

func TestLoadMissingCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	src := NewSource(db)

	var homestays []models.Homestay
	if err := src.Load(ctx, content.CollHomestays, &homestays); err != content.ErrCollectionMissing {
		t.Errorf("Load(homestays) error = %v, want ErrCollectionMissing", err)
	}

	var featured models.FeaturedContent
	if err := src.Load(ctx, content.CollFeaturedContent, &featured); err != content.ErrCollectionMissing {
		t.Errorf("Load(featured) error = %v, want ErrCollectionMissing", err)
	}
}

func TestRepositoryOverMongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := NewPublisher(db, zap.NewNop()).Publish(ctx, dataset()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	repo := content.New(NewSource(db), zap.NewNop())
	st, err := repo.GetStateBySlug(ctx, "manipur")
	if err != nil {
		t.Fatalf("GetStateBySlug() error = %v", err)
	}
	if st == nil || st.Capital != "Imphal" {
		t.Fatalf("GetStateBySlug(manipur) = %+v, want capital Imphal", st)
	}

	f, err := repo.GetFestivalByID(ctx, "f1")
	if err != nil {
		t.Fatalf("GetFestivalByID() error = %v", err)
	}
	if f == nil || f.RelatedCultureID != "c1" {
		t.Errorf("festival RelatedCultureID = %+v, want c1", f)
	}
}
