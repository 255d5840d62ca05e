package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/gdndoc"
	"github.com/fwojciec/gdndoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *gdndoc.Manifest {
	records := []gdndoc.OutputRecord{
		{
			Version:  gdndoc.VersionScript,
			Category: "AI",
			Item:     "AIJobTypeManager",
			Path:     "script/AI/AIJobTypeManager.md",
			Status:   gdndoc.StatusWritten,
		},
		{
			Version:  gdndoc.VersionEngine,
			Category: "Physics",
			Item:     "addForce",
			Path:     "engine/Physics/addForce.md",
			Status:   gdndoc.StatusSkipped,
		},
	}
	return gdndoc.BuildManifest(records, "https://gdn.example.com/docs.php", time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))
}

func TestManifestStore_WriteManifest(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewManifestStore(dir)

		require.NoError(t, store.WriteManifest(context.Background(), testManifest()))

		data, err := os.ReadFile(filepath.Join(dir, fs.ManifestFile))
		require.NoError(t, err)

		var decoded gdndoc.Manifest
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, 2, decoded.Metadata.TotalFiles)
		assert.Equal(t, "https://gdn.example.com/docs.php", decoded.Metadata.SourceURL)
		require.Contains(t, decoded.Versions, "engine")
		assert.Equal(t, "engine/Physics/addForce.md", decoded.Versions["engine"].Categories["Physics"].Items[0].Path)
	})

	t.Run("creates the base directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "output")
		store := fs.NewManifestStore(dir)

		require.NoError(t, store.WriteManifest(context.Background(), testManifest()))

		_, err := os.Stat(filepath.Join(dir, fs.ManifestFile))
		require.NoError(t, err)
	})

	t.Run("timestamp serializes as ISO 8601", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewManifestStore(dir)

		require.NoError(t, store.WriteManifest(context.Background(), testManifest()))

		data, err := os.ReadFile(filepath.Join(dir, fs.ManifestFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"generated_at": "2026-08-26T12:00:00Z"`)
	})
}

func TestManifestStore_WriteIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir)

	require.NoError(t, store.WriteIndex(context.Background(), testManifest()))

	data, err := os.ReadFile(filepath.Join(dir, fs.IndexFile))
	require.NoError(t, err)

	index := string(data)
	assert.Contains(t, index, "## Table of Contents")
	assert.Contains(t, index, "[addForce](engine/Physics/addForce.md)")
	assert.Contains(t, index, "[AIJobTypeManager](script/AI/AIJobTypeManager.md)")
}
