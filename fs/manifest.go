package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/gdndoc"
)

// Artifact file names within the output directory.
const (
	ManifestFile = "manifest.json"
	IndexFile    = "INDEX.md"
)

// Ensure ManifestStore implements gdndoc.ManifestWriter at compile time.
var _ gdndoc.ManifestWriter = (*ManifestStore)(nil)

// ManifestStore writes the manifest and index next to the output tree.
// Both artifacts are written whole at the end of a run; a crash before
// that point loses only the manifest, never already-written pages.
type ManifestStore struct {
	baseDir string
}

// NewManifestStore creates a ManifestStore rooted at baseDir.
func NewManifestStore(baseDir string) *ManifestStore {
	return &ManifestStore{baseDir: baseDir}
}

// WriteManifest serializes the manifest as indented JSON to
// manifest.json.
func (s *ManifestStore) WriteManifest(ctx context.Context, m *gdndoc.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.baseDir, ManifestFile), data, 0o644)
}

// WriteIndex renders the human-readable index to INDEX.md.
func (s *ManifestStore) WriteIndex(ctx context.Context, m *gdndoc.Manifest) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.baseDir, IndexFile), []byte(gdndoc.RenderIndex(m)), 0o644)
}
