// Package fs provides file-based persistence for documentation pages
// and the end-of-run manifest artifacts.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/gdndoc"
)

// unsafeChars matches characters stripped from category and item names
// before they become path segments. Word characters, whitespace and
// hyphens survive; everything else (slashes included) is removed.
var unsafeChars = regexp.MustCompile(`[^\w\s-]`)

// SanitizeName converts a category or item name to a filesystem-safe
// path segment. The result never contains path separators.
func SanitizeName(name string) string {
	cleaned := unsafeChars.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	if cleaned == "" {
		// A name made entirely of stripped characters still needs a
		// stable, non-empty segment.
		return "_"
	}
	return cleaned
}

// UnitPath computes the relative output path for a work unit:
// <version>/<category>/<item>.md, with forward slashes so the result
// can be embedded in the manifest and index links as-is.
func UnitPath(unit gdndoc.WorkUnit) string {
	return path.Join(
		string(unit.Version),
		SanitizeName(unit.Category),
		SanitizeName(unit.Item)+".md",
	)
}

// FormatPage renders the on-disk representation of a page: a metadata
// header (title, category, version) followed by the markdown body.
func FormatPage(unit gdndoc.WorkUnit, markdown string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(unit.Item)
	b.WriteString("\n\n")
	b.WriteString("**Category:** ")
	b.WriteString(unit.Category)
	b.WriteString("\n**Version:** ")
	b.WriteString(string(unit.Version))
	b.WriteString("\n\n---\n\n")
	b.WriteString(markdown)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements gdndoc.Persister at compile time.
var _ gdndoc.Persister = (*Writer)(nil)

// Writer persists pages under a base directory. Existing files are
// never rewritten unless force mode is enabled, which is what makes
// interrupted runs resumable: a re-run skips everything already on
// disk and re-attempts only what is missing.
type Writer struct {
	baseDir string
	force   bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithForce makes the Writer rewrite files that already exist,
// discarding resume semantics for the run.
func WithForce(force bool) WriterOption {
	return func(w *Writer) {
		w.force = force
	}
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Existing reports whether the unit's file is already present. Force
// mode always reports false so every page is re-fetched.
func (w *Writer) Existing(unit gdndoc.WorkUnit) (gdndoc.OutputRecord, bool) {
	rec := w.record(unit)
	if w.force {
		return rec, false
	}

	info, err := os.Stat(w.fullPath(rec.Path))
	if err != nil || !info.Mode().IsRegular() {
		return rec, false
	}

	rec.Status = gdndoc.StatusSkipped
	return rec, true
}

// Persist writes the markdown body for the work unit. The existence
// check is repeated here so Persist stays safe to call directly.
func (w *Writer) Persist(ctx context.Context, unit gdndoc.WorkUnit, markdown string) gdndoc.OutputRecord {
	if rec, ok := w.Existing(unit); ok {
		return rec
	}

	rec := w.record(unit)
	fullPath := w.fullPath(rec.Path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		rec.Status = gdndoc.StatusFailed
		rec.Err = err
		return rec
	}

	content := FormatPage(unit, markdown)
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		rec.Status = gdndoc.StatusFailed
		rec.Err = err
		return rec
	}

	rec.Status = gdndoc.StatusWritten
	return rec
}

func (w *Writer) record(unit gdndoc.WorkUnit) gdndoc.OutputRecord {
	return gdndoc.OutputRecord{
		Version:  unit.Version,
		Category: unit.Category,
		Item:     unit.Item,
		Path:     UnitPath(unit),
	}
}

func (w *Writer) fullPath(relPath string) string {
	return filepath.Join(w.baseDir, filepath.FromSlash(relPath))
}
