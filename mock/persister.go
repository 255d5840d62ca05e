package mock

import (
	"context"

	"github.com/fwojciec/gdndoc"
)

var _ gdndoc.Persister = (*Persister)(nil)

// Persister is a mock implementation of gdndoc.Persister.
type Persister struct {
	ExistingFn func(unit gdndoc.WorkUnit) (gdndoc.OutputRecord, bool)
	PersistFn  func(ctx context.Context, unit gdndoc.WorkUnit, markdown string) gdndoc.OutputRecord
}

func (p *Persister) Existing(unit gdndoc.WorkUnit) (gdndoc.OutputRecord, bool) {
	if p.ExistingFn == nil {
		return gdndoc.OutputRecord{}, false
	}
	return p.ExistingFn(unit)
}

func (p *Persister) Persist(ctx context.Context, unit gdndoc.WorkUnit, markdown string) gdndoc.OutputRecord {
	return p.PersistFn(ctx, unit, markdown)
}

var _ gdndoc.ManifestWriter = (*ManifestWriter)(nil)

// ManifestWriter is a mock implementation of gdndoc.ManifestWriter.
type ManifestWriter struct {
	WriteManifestFn func(ctx context.Context, m *gdndoc.Manifest) error
	WriteIndexFn    func(ctx context.Context, m *gdndoc.Manifest) error
}

func (w *ManifestWriter) WriteManifest(ctx context.Context, m *gdndoc.Manifest) error {
	if w.WriteManifestFn == nil {
		return nil
	}
	return w.WriteManifestFn(ctx, m)
}

func (w *ManifestWriter) WriteIndex(ctx context.Context, m *gdndoc.Manifest) error {
	if w.WriteIndexFn == nil {
		return nil
	}
	return w.WriteIndexFn(ctx, m)
}
