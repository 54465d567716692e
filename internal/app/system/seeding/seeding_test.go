package seeding

import (
	"testing"

	cmscontentstore "github.com/dalemusser/stratatour/internal/app/store/cmscontent"
	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/store/contentfile"
	"github.com/dalemusser/stratatour/internal/app/store/contentmongo"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/dalemusser/stratatour/internal/testutil"
	"go.uber.org/zap"
)

func TestSeedAll_CreatesRegionContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	got, err := cmscontentstore.New(db).Get(ctx, models.ScopeRegion, models.RegionSlug)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.DefiningThemes) != len(regionContent().DefiningThemes) {
		t.Errorf("len(DefiningThemes) = %d, want %d", len(got.DefiningThemes), len(regionContent().DefiningThemes))
	}
}

func TestSeedAll_KeepsEditorContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := cmscontentstore.New(db)
	edited := []models.Theme{{Title: "Edited by hand"}}
	if err := store.SetSection(ctx, models.ScopeRegion, models.RegionSlug, models.SectionDefiningThemes, edited, "editor"); err != nil {
		t.Fatalf("SetSection() error = %v", err)
	}

	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}
	if err := SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("second SeedAll() error = %v", err)
	}

	got, _ := store.Get(ctx, models.ScopeRegion, models.RegionSlug)
	if len(got.DefiningThemes) != 1 || got.DefiningThemes[0].Title != "Edited by hand" {
		t.Errorf("DefiningThemes = %v, want editor value kept", got.DefiningThemes)
	}
}

func TestSeedContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dir := t.TempDir()
	w, err := contentfile.NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.StageDataset(Dataset(nil)); err != nil {
		t.Fatalf("StageDataset() error = %v", err)
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	seeded, err := SeedContent(ctx, db, dir, zap.NewNop())
	if err != nil {
		t.Fatalf("SeedContent() error = %v", err)
	}
	if !seeded {
		t.Fatal("SeedContent() = false on an empty database, want true")
	}

	ds, err := content.LoadDataset(ctx, contentmongo.NewSource(db), zap.NewNop())
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(ds.States) != len(states()) {
		t.Errorf("len(States) = %d, want %d", len(ds.States), len(states()))
	}
	if len(ds.Culture) != len(culture()) {
		t.Errorf("len(Culture) = %d, want %d", len(ds.Culture), len(culture()))
	}

	// A second run leaves the published content alone.
	seeded, err = SeedContent(ctx, db, dir, zap.NewNop())
	if err != nil {
		t.Fatalf("second SeedContent() error = %v", err)
	}
	if seeded {
		t.Error("second SeedContent() = true, want false")
	}
}

func TestSeedContent_NoStaticStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seeded, err := SeedContent(ctx, db, t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("SeedContent() error = %v", err)
	}
	if seeded {
		t.Error("SeedContent() = true with no static files, want false")
	}
}
