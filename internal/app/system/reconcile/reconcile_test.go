package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func ids(ds []models.District) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func TestReadPrimaryDropsComments(t *testing.T) {
	districts, comments, err := ReadPrimary(filepath.Join("testdata", "primary.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, comments)
	assert.Len(t, districts, 9)
	assert.Equal(t, "MN_IMW_01", districts[0].ID)
	assert.Equal(t, "AS_TEZ_01", districts[8].ID)
	assert.Equal(t, "Lamphelpat", districts[0].Stats.Headquarters)
}

func TestReadPrimaryMissing(t *testing.T) {
	_, _, err := ReadPrimary(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestReadPrimaryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "X"`), 0o644))

	_, _, err := ReadPrimary(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSourceMissing)
}

func TestParsePrimaryRejectsNonObjectRecord(t *testing.T) {
	_, _, err := ParsePrimary([]byte(`[{"id": "A"}, 42]`))
	assert.Error(t, err)
}

func TestParsePrimaryCommentWithOtherFields(t *testing.T) {
	districts, comments, err := ParsePrimary([]byte(`[
		{"_comment": "placeholder", "id": "ZZ_01", "name": "Draft"},
		{"id": "MN_BIS_01", "state_id": "MN", "name": "Bishnupur", "slug": "bishnupur"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, comments)
	assert.Equal(t, []string{"MN_BIS_01"}, ids(districts))
}

func TestParsePrimaryDerivesMissingSlug(t *testing.T) {
	districts, _, err := ParsePrimary([]byte(`[
		{"id": "AS_DIM_01", "state_id": "AS", "name": "Dima Hasao"},
		{"id": "AS_GOL_01", "state_id": "AS", "name": "Golaghat", "slug": "golaghat-district"}
	]`))
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "dima-hasao", districts[0].Slug)
	assert.Equal(t, "golaghat-district", districts[1].Slug)
}

func TestMergeCounts(t *testing.T) {
	primary, comments, err := ReadPrimary(filepath.Join("testdata", "primary.json"))
	require.NoError(t, err)

	res := Merge(primary, Supplementary(), zap.NewNop())

	// 10 records, 1 comment, 2 supplementary.
	assert.Len(t, res.Districts, 10-comments+2)
	assert.Len(t, res.Districts, 11)
	assert.Empty(t, res.Replaced)

	// Primary order kept, supplementary appended.
	got := ids(res.Districts)
	assert.Equal(t, ids(primary), got[:len(primary)])
	assert.Equal(t, []string{"AS_KAR_ANG", "AS_MAJ"}, got[len(primary):])
}

func TestMergeAddsAssamHillDistricts(t *testing.T) {
	primary, _, err := ReadPrimary(filepath.Join("testdata", "primary.json"))
	require.NoError(t, err)

	res := Merge(primary, Supplementary(), zap.NewNop())

	var assam []string
	for _, d := range res.Districts {
		if d.StateID == "AS" {
			assam = append(assam, d.ID)
		}
	}
	assert.Contains(t, assam, "AS_KAR_ANG")
	assert.Contains(t, assam, "AS_MAJ")

	maj := res.Districts[len(res.Districts)-1]
	assert.NotEmpty(t, maj.KnownFor)
}

func TestMergeDuplicateIDReplacesInPlace(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	primary := []models.District{
		{ID: "AS_KAM_01", StateID: "AS", Name: "Kamrup"},
		{ID: "AS_MAJ", StateID: "AS", Name: "Majuli (old)"},
		{ID: "AS_JOR_01", StateID: "AS", Name: "Jorhat"},
	}

	res := Merge(primary, Supplementary(), logger)

	assert.Equal(t, []string{"AS_KAM_01", "AS_MAJ", "AS_JOR_01", "AS_KAR_ANG"}, ids(res.Districts))
	assert.Equal(t, "Majuli", res.Districts[1].Name)
	assert.Equal(t, []string{"AS_MAJ"}, res.Replaced)
	assert.Equal(t, 1, logs.FilterMessage("supplementary district replaces existing record").Len())
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	primary := []models.District{{ID: "AS_MAJ", Name: "old"}}
	Merge(primary, Supplementary(), zap.NewNop())
	assert.Equal(t, "old", primary[0].Name)
}

func TestMergeIsDeterministic(t *testing.T) {
	primary, _, err := ReadPrimary(filepath.Join("testdata", "primary.json"))
	require.NoError(t, err)

	a := Merge(primary, Supplementary(), zap.NewNop())
	b := Merge(primary, Supplementary(), zap.NewNop())
	assert.Equal(t, a, b)
}

func TestSupplementaryShape(t *testing.T) {
	for _, d := range Supplementary() {
		assert.Equal(t, "AS", d.StateID, d.ID)
		assert.NotEmpty(t, d.Slug, d.ID)
		assert.NotEmpty(t, d.KnownFor, d.ID)
		assert.False(t, d.Coordinates.IsZero(), d.ID)
	}
}
