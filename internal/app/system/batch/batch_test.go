package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/app/system/seeding"
	"github.com/dalemusser/stratatour/internal/app/system/toolconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sourceFile = "../seeding/testdata/districts_source.json"

func TestExecute_WritesContentStore(t *testing.T) {
	dir := t.TempDir()
	cfg := toolconfig.Config{SourcePath: sourceFile, ContentDir: dir}

	code := Execute(context.Background(), cfg, seeding.Run, zap.NewNop())
	require.Equal(t, 0, code)

	for _, e := range (&content.Dataset{}).Entries() {
		_, err := os.Stat(filepath.Join(dir, content.FileName(e.Name)))
		assert.NoError(t, err, e.Name)
	}
}

func TestExecute_UpdateDistrictsLeavesOtherFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := toolconfig.Config{SourcePath: sourceFile, ContentDir: dir}

	require.Equal(t, 0, Execute(context.Background(), cfg, seeding.UpdateDistricts, zap.NewNop()))

	_, err := os.Stat(filepath.Join(dir, content.FileName(content.CollDistricts)))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, content.FileName(content.CollPlaces)))
	assert.True(t, os.IsNotExist(err), "places should not be written")
}

func TestExecute_MissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	cfg := toolconfig.Config{SourcePath: filepath.Join(dir, "nope.json"), ContentDir: dir}

	assert.Equal(t, 1, Execute(context.Background(), cfg, seeding.Run, zap.NewNop()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMain_ReadsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STRATATOUR_DISTRICT_SOURCE", filepath.Join(dir, "missing.json"))
	t.Setenv("STRATATOUR_CONTENT_DIR", dir)
	t.Setenv("STRATATOUR_PUBLISH_MONGO_URI", "")
	t.Setenv("STRATATOUR_ENV", "prod")

	var stderr bytes.Buffer
	assert.Equal(t, 1, Main(context.Background(), "seed", seeding.Run, &stderr))

	t.Setenv("STRATATOUR_DISTRICT_SOURCE", sourceFile)
	assert.Equal(t, 0, Main(context.Background(), "seed", seeding.Run, &stderr))
	assert.Empty(t, stderr.String())
}
