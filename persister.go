package gdndoc

import "context"

// Persister writes converted pages to the output tree.
// Files are append-only with respect to prior runs: an existing file is
// assumed final and is never rewritten (resume semantics), unless the
// implementation was explicitly configured to force-refresh.
type Persister interface {
	// Existing reports whether the work unit's file is already present
	// on disk. When true, the returned record carries StatusSkipped and
	// the caller can skip fetching the page entirely.
	Existing(unit WorkUnit) (OutputRecord, bool)

	// Persist writes the markdown body for the work unit, creating
	// parent directories as needed. I/O failures are reported through
	// the record's Status and Err fields, never as a panic or an
	// aborted run.
	Persist(ctx context.Context, unit WorkUnit, markdown string) OutputRecord
}

// ManifestWriter persists the end-of-run index artifacts.
type ManifestWriter interface {
	// WriteManifest writes the machine-readable manifest (manifest.json).
	WriteManifest(ctx context.Context, m *Manifest) error

	// WriteIndex writes the human-readable index (INDEX.md).
	WriteIndex(ctx context.Context, m *Manifest) error
}
